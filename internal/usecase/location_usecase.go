package usecase

import (
	"context"
	"time"

	"seguridad/internal/domain/entity"
)

// RecordLocationInput represents a location sample reported by a device
type RecordLocationInput struct {
	DeviceID  string    `json:"device_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

// LocationUsecase defines the interface for the location log use cases
type LocationUsecase interface {
	// RecordLocation ensures the device and appends the sample
	RecordLocation(ctx context.Context, input *RecordLocationInput) (*entity.LocationEvent, error)

	// GetLatestLocation returns the newest sample of a device
	GetLatestLocation(ctx context.Context, externalID string) (*entity.LocationEvent, error)

	// GetLocationHistory returns up to limit samples, newest first.
	// A nil limit selects the configured default, zero yields no rows, and larger limits are clamped to the maximum.
	GetLocationHistory(ctx context.Context, externalID string, limit *int) ([]*entity.LocationEvent, error)
}
