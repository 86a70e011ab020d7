package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateContact is returned when a racing insert already created the (device, phone) contact.
var ErrDuplicateContact = errors.New("contact already exists")

// ContactRepository defines the interface for emergency contact persistence.
type ContactRepository interface {
	// Upsert updates the name of the contact matching (device, phone) or inserts it.
	Upsert(ctx context.Context, contact *entity.Contact) error

	// FindByDevice lists the contacts of a device, most recently created first.
	FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Contact, error)
}
