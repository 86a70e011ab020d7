package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrInvitationNotFound is returned when no invitation matches the lookup key.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrDuplicateInvitationCode is returned when the code is already held by another owner.
	ErrDuplicateInvitationCode = errors.New("invitation code already in use")
)

// InvitationRepository defines the interface for invitation persistence.
type InvitationRepository interface {
	// Upsert replaces the owner's invitation code and expiry, or creates the invitation.
	Upsert(ctx context.Context, invitation *entity.Invitation) error

	// FindByOwner retrieves the owner's current invitation.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Invitation, error)

	// FindByCode retrieves an invitation by code, reading from the primary.
	FindByCode(ctx context.Context, code string) (*entity.Invitation, error)

	// CodeExists reports whether any invitation, expired or not, holds code.
	CodeExists(ctx context.Context, code string) (bool, error)
}
