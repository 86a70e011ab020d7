package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateSafeZone is returned when a racing insert already created the (device, name) zone.
var ErrDuplicateSafeZone = errors.New("safe zone already exists")

// SafeZoneRepository defines the interface for safe zone persistence.
type SafeZoneRepository interface {
	// Upsert updates the zone matching (device, name) in place or inserts it.
	// The passed entity is filled with the stored identity and timestamps.
	Upsert(ctx context.Context, zone *entity.SafeZone) error

	// FindByDevice lists the zones of a device, most recently updated first.
	FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.SafeZone, error)
}
