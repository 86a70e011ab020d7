package impl

import (
	"context"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type safeZoneService struct {
	txManager    repository.TransactionManager
	deviceRepo   repository.DeviceRepository
	safeZoneRepo repository.SafeZoneRepository
}

// SafeZoneServiceParams holds dependencies for SafeZoneService, injected by Fx.
type SafeZoneServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DeviceRepo   repository.DeviceRepository
	SafeZoneRepo repository.SafeZoneRepository
}

// NewSafeZoneService creates a new safe zone service instance
func NewSafeZoneService(params SafeZoneServiceParams) usecase.SafeZoneUsecase {
	return &safeZoneService{
		txManager:    params.TxManager,
		deviceRepo:   params.DeviceRepo,
		safeZoneRepo: params.SafeZoneRepo,
	}
}

// UpsertSafeZone updates the (device, name) zone in place or creates it
func (s *safeZoneService) UpsertSafeZone(ctx context.Context, input *usecase.UpsertSafeZoneInput) (*entity.SafeZone, error) {
	zone := &entity.SafeZone{
		Name:         input.Name,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: input.RadiusMeters,
		IsActive:     input.IsActive,
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := repoFactory.NewDeviceRepository().Ensure(ctx, input.DeviceID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		zone.DeviceID = device.ID

		if err := repoFactory.NewSafeZoneRepository().Upsert(ctx, zone); err != nil {
			return errors.Wrap(err, "failed to upsert safe zone")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save safe zone")
	}

	return zone, nil
}

// ListSafeZones lists the zones of a device, most recently updated first
func (s *safeZoneService) ListSafeZones(ctx context.Context, externalID string) ([]*entity.SafeZone, error) {
	device, err := s.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.SafeZone{}, nil
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	zones, err := s.safeZoneRepo.FindByDevice(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find safe zones")
	}

	return zones, nil
}
