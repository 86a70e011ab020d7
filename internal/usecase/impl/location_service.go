package impl

import (
	"context"

	"seguridad/config"
	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type locationService struct {
	txManager    repository.TransactionManager
	deviceRepo   repository.DeviceRepository
	locationRepo repository.LocationRepository
	defaultLimit int
	maxLimit     int
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DeviceRepo   repository.DeviceRepository
	LocationRepo repository.LocationRepository
	Config       *config.Config
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		deviceRepo:   params.DeviceRepo,
		locationRepo: params.LocationRepo,
		defaultLimit: params.Config.Location.DefaultHistoryLimit,
		maxLimit:     params.Config.Location.MaxHistoryLimit,
	}
}

// RecordLocation ensures the device and appends the sample in one transaction
func (s *locationService) RecordLocation(ctx context.Context, input *usecase.RecordLocationInput) (*entity.LocationEvent, error) {
	event := &entity.LocationEvent{
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Accuracy:  input.Accuracy,
		Timestamp: input.Timestamp.UTC(),
	}

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := repoFactory.NewDeviceRepository().Ensure(ctx, input.DeviceID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		event.DeviceID = device.ID

		if err := repoFactory.NewLocationRepository().Create(ctx, event); err != nil {
			return errors.Wrap(err, "failed to create location event")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record location")
	}

	return event, nil
}

// GetLatestLocation returns the newest sample; an unknown device has no location
func (s *locationService) GetLatestLocation(ctx context.Context, externalID string) (*entity.LocationEvent, error) {
	device, err := s.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	event, err := s.locationRepo.FindLatestByDevice(ctx, device.ID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "no location samples")
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return event, nil
}

// GetLocationHistory returns up to limit samples, newest first
func (s *locationService) GetLocationHistory(ctx context.Context, externalID string, limit *int) ([]*entity.LocationEvent, error) {
	n := normalizeLimit(limit, s.defaultLimit, s.maxLimit)
	if n == 0 {
		return []*entity.LocationEvent{}, nil
	}

	device, err := s.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.LocationEvent{}, nil
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	events, err := s.locationRepo.FindHistoryByDevice(ctx, device.ID, n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	return events, nil
}
