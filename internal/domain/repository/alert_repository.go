package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertRepository defines the interface for alert event persistence.
type AlertRepository interface {
	// Create stores a new alert event.
	Create(ctx context.Context, alert *entity.AlertEvent) error

	// FindByDevice returns up to limit alerts of a device ordered by timestamp descending.
	FindByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.AlertEvent, error)
}
