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

type deviceTokenService struct {
	txManager       repository.TransactionManager
	deviceRepo      repository.DeviceRepository
	deviceTokenRepo repository.DeviceTokenRepository
	logger          *slog.Logger
}

// DeviceTokenServiceParams holds dependencies for DeviceTokenService, injected by Fx.
type DeviceTokenServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	DeviceRepo      repository.DeviceRepository
	DeviceTokenRepo repository.DeviceTokenRepository
	Logger          *slog.Logger
}

// NewDeviceTokenService creates a new push token service instance
func NewDeviceTokenService(params DeviceTokenServiceParams) usecase.DeviceTokenUsecase {
	return &deviceTokenService{
		txManager:       params.TxManager,
		deviceRepo:      params.DeviceRepo,
		deviceTokenRepo: params.DeviceTokenRepo,
		logger:          params.Logger,
	}
}

func (srv *deviceTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterToken stores the token, repointing it when another device held it
func (srv *deviceTokenService) RegisterToken(ctx context.Context, input *usecase.RegisterTokenInput) (*entity.DeviceToken, error) {
	environment := entity.PushEnvironment(input.Environment)
	if environment == "" {
		environment = entity.PushEnvironmentSandbox
	}
	if !environment.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidEnvironment, "unknown push environment %q", input.Environment)
	}

	token := &entity.DeviceToken{
		Token:       input.Token,
		Environment: environment,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		device, err := repoFactory.NewDeviceRepository().Ensure(ctx, input.DeviceID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		token.DeviceID = device.ID

		if err := repoFactory.NewDeviceTokenRepository().Upsert(ctx, token); err != nil {
			return errors.Wrap(err, "failed to upsert device token")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register device token")
	}

	srv.log(ctx).Debug("Push token registered",
		slog.String("device_id", input.DeviceID),
		slog.String("token_suffix", token.Suffix()),
		slog.String("environment", string(token.Environment)),
	)

	return token, nil
}

// ListTokens lists the push tokens of a device, most recently seen first
func (srv *deviceTokenService) ListTokens(ctx context.Context, externalID string) ([]*entity.DeviceToken, error) {
	device, err := srv.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.DeviceToken{}, nil
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	tokens, err := srv.deviceTokenRepo.FindByDevice(ctx, device.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens")
	}

	return tokens, nil
}

// DeleteToken removes a push token by value
func (srv *deviceTokenService) DeleteToken(ctx context.Context, token string) error {
	if err := srv.deviceTokenRepo.DeleteByToken(ctx, token); err != nil {
		if errors.Is(err, repository.ErrDeviceTokenNotFound) {
			return errors.Wrap(domainerrors.ErrDeviceTokenNotFound, "device token not found")
		}

		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}
