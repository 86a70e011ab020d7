package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactModel is the GORM-specific struct for the 'contacts' table.
type ContactModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	DeviceID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_contacts_device_phone,priority:1"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Phone     string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_contacts_device_phone,priority:2"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ContactModel) TableName() string {
	return "contacts"
}
