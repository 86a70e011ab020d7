package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is the single active invitation code of an owner device.
type Invitation struct {
	ID            uuid.UUID `json:"id"`
	OwnerDeviceID uuid.UUID `json:"owner_device_id"`
	Code          string    `json:"code"`
	ExpiresAt     time.Time `json:"expires_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsExpired reports whether the invitation can no longer be redeemed at now.
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.ExpiresAt.Before(now)
}
