package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrDeviceTokenNotFound is returned when a push token is not registered.
	ErrDeviceTokenNotFound = errors.New("device token not found")
	// ErrDuplicateDeviceToken is returned when a racing insert already registered the token.
	ErrDuplicateDeviceToken = errors.New("device token already exists")
)

// DeviceTokenRepository defines the interface for the push token registry.
type DeviceTokenRepository interface {
	// Upsert registers the token, repointing it to token.DeviceID when it already exists
	// and refreshing environment and last_seen_at.
	Upsert(ctx context.Context, token *entity.DeviceToken) error

	// FindByDevice lists the tokens of a device, most recently seen first.
	FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteByToken removes a token by its value.
	DeleteByToken(ctx context.Context, token string) error
}
