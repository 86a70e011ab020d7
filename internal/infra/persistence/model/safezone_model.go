package model

import (
	"time"

	"github.com/google/uuid"
)

// SafeZoneModel is the GORM-specific struct for the 'safezones' table.
type SafeZoneModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_safezones_device_name,priority:1"`
	Name         string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_safezones_device_name,priority:2"`
	Latitude     float64   `gorm:"not null"`
	Longitude    float64   `gorm:"not null"`
	RadiusMeters float64   `gorm:"not null;check:radius_meters > 0"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SafeZoneModel) TableName() string {
	return "safezones"
}
