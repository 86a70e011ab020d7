package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// SafeZone is a named circular geofence owned by a device. Name is unique per device.
type SafeZone struct {
	ID           uuid.UUID `json:"id"`
	DeviceID     uuid.UUID `json:"device_id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_meters"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Center returns the zone center as an orb point (longitude, latitude).
func (z *SafeZone) Center() orb.Point {
	return orb.Point{z.Longitude, z.Latitude}
}

// DistanceMeters returns the great-circle distance from the zone center to p.
func (z *SafeZone) DistanceMeters(p orb.Point) float64 {
	return geo.DistanceHaversine(z.Center(), p)
}

// Contains reports whether p lies within the zone radius.
func (z *SafeZone) Contains(p orb.Point) bool {
	return z.DistanceMeters(p) <= z.RadiusMeters
}
