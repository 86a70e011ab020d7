package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// UpsertSafeZoneInput represents a safe zone keyed by device and name
type UpsertSafeZoneInput struct {
	DeviceID     string  `json:"device_id"`
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
}

// SafeZoneUsecase defines the interface for safe zone use cases
type SafeZoneUsecase interface {
	UpsertSafeZone(ctx context.Context, input *UpsertSafeZoneInput) (*entity.SafeZone, error)
	ListSafeZones(ctx context.Context, externalID string) ([]*entity.SafeZone, error)
}
