package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// RegisterTokenInput represents a push token registration. An empty environment means sandbox.
type RegisterTokenInput struct {
	DeviceID    string `json:"device_id"`
	Token       string `json:"token"`
	Environment string `json:"environment"`
}

// DeviceTokenUsecase defines the interface for the push token registry use cases
type DeviceTokenUsecase interface {
	// RegisterToken stores the token, repointing it when another device held it
	RegisterToken(ctx context.Context, input *RegisterTokenInput) (*entity.DeviceToken, error)

	// ListTokens lists the push tokens of a device
	ListTokens(ctx context.Context, externalID string) ([]*entity.DeviceToken, error)

	// DeleteToken removes a push token by value
	DeleteToken(ctx context.Context, token string) error
}
