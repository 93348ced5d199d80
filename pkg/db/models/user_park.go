package models

import "time"

// UserPark links a user to a saved park by code.
type UserPark struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_user_parks_user_id;uniqueIndex:idx_user_parks_user_code"`
	ParkCode  string    `gorm:"column:park_code;type:text;not null;uniqueIndex:idx_user_parks_user_code"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
