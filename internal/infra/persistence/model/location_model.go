package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationEventModel is the GORM-specific struct for the 'location_events' table.
type LocationEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index:idx_location_events_device_ts,priority:1"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	Accuracy  float64   `gorm:"not null"`
	Timestamp time.Time `gorm:"not null;index:idx_location_events_device_ts,priority:2,sort:desc"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationEventModel) TableName() string {
	return "location_events"
}
