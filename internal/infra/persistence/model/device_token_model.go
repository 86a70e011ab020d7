package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens' table.
type DeviceTokenModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Token       string    `gorm:"type:varchar(512);not null;uniqueIndex"`
	Environment string    `gorm:"type:varchar(20);not null;default:sandbox"`
	CreatedAt   time.Time `gorm:"not null"`
	LastSeenAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
