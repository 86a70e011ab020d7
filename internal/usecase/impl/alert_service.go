package impl

import (
	"context"
	"fmt"
	"log/slog"

	"seguridad/config"
	deliverycontext "seguridad/internal/delivery/context"
	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/metrics"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type alertService struct {
	txManager  repository.TransactionManager
	deviceRepo repository.DeviceRepository
	alertRepo  repository.AlertRepository
	dispatcher *alertDispatcher
	publisher  service.EventPublisher
	logger     *slog.Logger

	defaultLimit int
	maxLimit     int
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
// PushService and EventPublisher are optional.
type AlertServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	DeviceRepo       repository.DeviceRepository
	AlertRepo        repository.AlertRepository
	SubscriptionRepo repository.SubscriptionRepository
	DeviceTokenRepo  repository.DeviceTokenRepository
	PushService      service.PushService    `optional:"true"`
	EventPublisher   service.EventPublisher `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAlertService creates a new alert service instance
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	return &alertService{
		txManager:  params.TxManager,
		deviceRepo: params.DeviceRepo,
		alertRepo:  params.AlertRepo,
		dispatcher: &alertDispatcher{
			subscriptionRepo: params.SubscriptionRepo,
			deviceTokenRepo:  params.DeviceTokenRepo,
			push:             params.PushService,
			logger:           params.Logger,
		},
		publisher:    params.EventPublisher,
		logger:       params.Logger,
		defaultLimit: params.Config.Location.DefaultHistoryLimit,
		maxLimit:     params.Config.Location.MaxHistoryLimit,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAlert stores the alert, then fans it out and publishes it
func (srv *alertService) CreateAlert(ctx context.Context, input *usecase.CreateAlertInput) (*entity.AlertEvent, error) {
	alert := &entity.AlertEvent{
		Type:      input.Type,
		Timestamp: input.Timestamp.UTC(),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
	}

	var device *entity.Device
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		device, err = repoFactory.NewDeviceRepository().Ensure(ctx, input.DeviceID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure device")
		}
		alert.DeviceID = device.ID

		if err := repoFactory.NewAlertRepository().Create(ctx, alert); err != nil {
			return errors.Wrap(err, "failed to create alert event")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create alert")
	}

	metrics.RecordAlert(alert.IsEnter())

	result := srv.dispatch(ctx, device, alert.Type)
	srv.publish(ctx, device, alert, result)

	return alert, nil
}

// dispatch runs the fan-out; a panic inside it must not fail an alert that is already stored.
func (srv *alertService) dispatch(ctx context.Context, device *entity.Device, alertType string) (result DispatchResult) {
	defer func() {
		if r := recover(); r != nil {
			srv.log(ctx).Error("Alert dispatch panicked",
				slog.String("device_id", device.ExternalID),
				slog.String("panic", fmt.Sprint(r)),
			)
		}
	}()

	return srv.dispatcher.Dispatch(ctx, device, alertType)
}

func (srv *alertService) publish(ctx context.Context, device *entity.Device, alert *entity.AlertEvent, result DispatchResult) {
	if srv.publisher == nil {
		return
	}

	event := &service.AlertCreatedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AlertID:       alert.ID.String(),
		DeviceID:      device.ExternalID,
		Type:          alert.Type,
		Timestamp:     alert.Timestamp,
		Latitude:      alert.Latitude,
		Longitude:     alert.Longitude,
		PushAttempted: result.Attempted,
		PushFailed:    result.Failed,
	}
	if err := srv.publisher.PublishAlertCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish alert event",
			slog.String("alert_id", event.AlertID),
			slog.Any("error", err),
		)
	}
}

// ListAlerts returns up to limit alerts, newest first
func (srv *alertService) ListAlerts(ctx context.Context, externalID string, limit *int) ([]*entity.AlertEvent, error) {
	n := normalizeLimit(limit, srv.defaultLimit, srv.maxLimit)
	if n == 0 {
		return []*entity.AlertEvent{}, nil
	}

	device, err := srv.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.AlertEvent{}, nil
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	alerts, err := srv.alertRepo.FindByDevice(ctx, device.ID, n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find alerts")
	}

	return alerts, nil
}
