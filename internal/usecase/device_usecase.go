// Package usecase declares the application use cases exposed to the delivery layer.
package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// DeviceUsecase defines the interface for the device registry use cases
type DeviceUsecase interface {
	// RegisterDevice creates the device or refreshes its platform and last-seen time
	RegisterDevice(ctx context.Context, externalID, platform string) (*entity.Device, error)

	// GetDevice retrieves a device by its external id
	GetDevice(ctx context.Context, externalID string) (*entity.Device, error)

	// DeleteDevice removes a device and everything it owns
	DeleteDevice(ctx context.Context, externalID string) error
}
