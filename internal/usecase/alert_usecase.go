package usecase

import (
	"context"
	"time"

	"seguridad/internal/domain/entity"
)

// CreateAlertInput represents a client-determined safe-zone crossing
type CreateAlertInput struct {
	DeviceID  string    `json:"device_id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// AlertUsecase defines the interface for alert use cases
type AlertUsecase interface {
	// CreateAlert stores the alert and fans it out to subscribers.
	// Push and publishing failures never fail the call.
	CreateAlert(ctx context.Context, input *CreateAlertInput) (*entity.AlertEvent, error)

	// ListAlerts returns up to limit alerts of a device, newest first.
	// A nil limit selects the configured default.
	ListAlerts(ctx context.Context, externalID string, limit *int) ([]*entity.AlertEvent, error)
}
