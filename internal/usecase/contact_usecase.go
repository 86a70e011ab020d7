package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// UpsertContactInput represents an emergency contact keyed by device and phone
type UpsertContactInput struct {
	DeviceID string `json:"device_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// ContactUsecase defines the interface for emergency contact use cases
type ContactUsecase interface {
	UpsertContact(ctx context.Context, input *UpsertContactInput) (*entity.Contact, error)
	ListContacts(ctx context.Context, externalID string) ([]*entity.Contact, error)
}
