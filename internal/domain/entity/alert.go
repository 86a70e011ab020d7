package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertTypeEnter is the alert type sent when a device enters a safe zone.
// Any other type is treated as an exit.
const AlertTypeEnter = "enter"

// AlertEvent records a safe-zone boundary crossing determined by the client.
type AlertEvent struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsEnter reports whether the alert marks a zone entry.
func (a *AlertEvent) IsEnter() bool {
	return a.Type == AlertTypeEnter
}
