package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a device has no location samples.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for the append-only location log.
type LocationRepository interface {
	// Create appends a new location sample.
	Create(ctx context.Context, event *entity.LocationEvent) error

	// FindLatestByDevice returns the sample with the greatest timestamp.
	FindLatestByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.LocationEvent, error)

	// FindHistoryByDevice returns up to limit samples ordered by timestamp descending.
	FindHistoryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.LocationEvent, error)
}
