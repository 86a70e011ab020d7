package impl

import (
	"context"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type contactService struct {
	txManager   repository.TransactionManager
	deviceRepo  repository.DeviceRepository
	contactRepo repository.ContactRepository
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	DeviceRepo  repository.DeviceRepository
	ContactRepo repository.ContactRepository
}

// NewContactService creates a new contact service instance
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	return &contactService{
		txManager:   params.TxManager,
		deviceRepo:  params.DeviceRepo,
		contactRepo: params.ContactRepo,
	}
}

// UpsertContact renames the (device, phone) contact or creates it
func (s *contactService) UpsertContact(ctx context.Context, input *usecase.UpsertContactInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		Name:  input.Name,
		Phone: input.Phone,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := repoFactory.NewDeviceRepository().Ensure(ctx, input.DeviceID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		contact.DeviceID = device.ID

		if err := repoFactory.NewContactRepository().Upsert(ctx, contact); err != nil {
			return errors.Wrap(err, "failed to upsert contact")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save contact")
	}

	return contact, nil
}

// ListContacts lists the contacts of a device, most recently created first
func (s *contactService) ListContacts(ctx context.Context, externalID string) ([]*entity.Contact, error) {
	device, err := s.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.Contact{}, nil
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	contacts, err := s.contactRepo.FindByDevice(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find contacts")
	}

	return contacts, nil
}
