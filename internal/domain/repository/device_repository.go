// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when no device matches the lookup key.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrDuplicateDevice is returned when a concurrent request created the same external id first.
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository defines the interface for device registry operations.
type DeviceRepository interface {
	// Ensure returns the device for externalID, creating it when absent.
	// An existing device gets last_seen_at refreshed and, when platform is non-empty, its platform overwritten.
	// A new device with an empty platform is created with entity.DefaultPlatform.
	Ensure(ctx context.Context, externalID, platform string) (*entity.Device, error)

	// FindByExternalID retrieves a device by its client-supplied identifier.
	FindByExternalID(ctx context.Context, externalID string) (*entity.Device, error)

	// FindByID retrieves a device by its internal identity.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)

	// DeleteByExternalID removes a device and, through cascading foreign keys, everything it owns.
	DeleteByExternalID(ctx context.Context, externalID string) error
}
