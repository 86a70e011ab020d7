package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertEventModel is the GORM-specific struct for the 'alert_events' table.
type AlertEventModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;index:idx_alert_events_device_ts,priority:1"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Timestamp time.Time `gorm:"not null;index:idx_alert_events_device_ts,priority:2,sort:desc"`
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AlertEventModel) TableName() string {
	return "alert_events"
}
