package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationModel is the GORM-specific struct for the 'invitations' table.
// Each owner holds at most one row; codes are unique across all owners.
type InvitationModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerDeviceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Code          string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	ExpiresAt     time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvitationModel) TableName() string {
	return "invitations"
}
