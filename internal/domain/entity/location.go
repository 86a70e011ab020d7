package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationEvent is an immutable position sample reported by a device.
type LocationEvent struct {
	ID        uuid.UUID `json:"id"`
	DeviceID  uuid.UUID `json:"device_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`  // Horizontal accuracy in meters as reported by the client.
	Timestamp time.Time `json:"timestamp"` // Client-supplied sample time.
	CreatedAt time.Time `json:"created_at"`
}

// Point returns the sample position as an orb point (longitude, latitude).
func (l *LocationEvent) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}
