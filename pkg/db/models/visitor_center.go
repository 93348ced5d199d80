package models

import "time"

// VisitorCenter is a staffed facility inside a park.
type VisitorCenter struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement"`
	CenterName      string    `gorm:"column:center_name;type:text;not null"`
	Description     string    `gorm:"column:description;type:text"`
	PhysicalAddress string    `gorm:"column:physical_address;type:text;not null"`
	MailingAddress  string    `gorm:"column:mailing_address;type:text"`
	PhoneNumber     string    `gorm:"column:phone_number;type:text;not null"`
	ParkID          uint      `gorm:"column:park_id;not null;index:idx_visitor_centers_park_id"`
	Park            *Park     `gorm:"foreignKey:ParkID"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
