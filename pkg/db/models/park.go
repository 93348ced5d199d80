package models

import "time"

// Park is a national or state park tracked by the catalog.
type Park struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement"`
	ParkCode    string    `gorm:"column:park_code;type:text;not null;uniqueIndex:idx_parks_park_code"`
	ParkName    string    `gorm:"column:park_name;type:text;not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	StateCode   string    `gorm:"column:state_code;type:text;not null;index:idx_parks_state_code"`
	IsStatePark bool      `gorm:"column:is_state_park;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
