package impl

import (
	"context"
	"log/slog"

	deliverycontext "seguridad/internal/delivery/context"
	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type deviceService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService creates a new device service instance
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

func (srv *deviceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterDevice creates the device or refreshes its platform and last-seen time
func (srv *deviceService) RegisterDevice(ctx context.Context, externalID, platform string) (*entity.Device, error) {
	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ensured, err := repoFactory.NewDeviceRepository().Ensure(ctx, externalID, platform)
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		device = ensured

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.log(ctx).Debug("Device registered",
		slog.String("device_id", device.ExternalID),
		slog.String("platform", device.Platform),
	)

	return device, nil
}

// GetDevice retrieves a device by its external id
func (srv *deviceService) GetDevice(ctx context.Context, externalID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// DeleteDevice removes a device; its zones, samples, alerts, contacts, tokens,
// subscriptions and invitation are removed with it.
func (srv *deviceService) DeleteDevice(ctx context.Context, externalID string) error {
	if err := srv.deviceRepo.DeleteByExternalID(ctx, externalID); err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceNotFound, "device not found")
		}

		return errors.Wrap(err, "failed to delete device")
	}

	srv.log(ctx).Info("Device deleted", slog.String("device_id", externalID))

	return nil
}
