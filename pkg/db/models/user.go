package models

import "time"

// User represents the canonical account entity. The normalized columns hold
// the lowercase handle/email and back the uniqueness guarantees; lookups go
// through them so equality is case-insensitive.
type User struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserName            string    `gorm:"column:user_name;type:text;not null"`
	NormalizedUserName  string    `gorm:"column:normalized_user_name;type:text;not null;uniqueIndex:idx_users_normalized_user_name"`
	Email               string    `gorm:"column:email;type:text;not null"`
	NormalizedEmail     string    `gorm:"column:normalized_email;type:text;not null;uniqueIndex:idx_users_normalized_email"`
	GivenName           string    `gorm:"column:given_name;type:text;not null"`
	PhoneNumber         string    `gorm:"column:phone_number;type:text;not null"`
	PasswordHash        string    `gorm:"column:password_hash;type:text;not null"`
	ParkID              *uint     `gorm:"column:park_id;index:idx_users_park_id"`
	Park                *Park     `gorm:"foreignKey:ParkID"`
	IsConfirmedEmployee bool      `gorm:"column:is_confirmed_employee;not null;default:false"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
