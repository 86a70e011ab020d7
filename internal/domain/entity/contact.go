package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency contact of a device. Phone is unique per device and never changes for a row.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
