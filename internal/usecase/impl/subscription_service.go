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

type subscriptionService struct {
	txManager        repository.TransactionManager
	deviceRepo       repository.DeviceRepository
	subscriptionRepo repository.SubscriptionRepository
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	DeviceRepo       repository.DeviceRepository
	SubscriptionRepo repository.SubscriptionRepository
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		deviceRepo:       params.DeviceRepo,
		subscriptionRepo: params.SubscriptionRepo,
		logger:           params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe creates the edge owner -> subscriber, returning the existing one when present
func (srv *subscriptionService) Subscribe(ctx context.Context, ownerExternalID, subscriberExternalID string) (*entity.Subscription, error) {
	if ownerExternalID == subscriberExternalID {
		return nil, errors.Wrap(domainerrors.ErrSelfSubscription, "owner and subscriber are the same device")
	}

	var subscription *entity.Subscription
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		deviceRepo := repoFactory.NewDeviceRepository()

		owner, err := deviceRepo.Ensure(ctx, ownerExternalID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure owner device")
		}
		subscriber, err := deviceRepo.Ensure(ctx, subscriberExternalID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure subscriber device")
		}

		subscription, err = linkDevices(ctx, repoFactory.NewSubscriptionRepository(), owner.ID, subscriber.ID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to subscribe")
	}

	srv.log(ctx).Debug("Subscription ensured",
		slog.String("owner_device_id", ownerExternalID),
		slog.String("subscriber_device_id", subscriberExternalID),
	)

	return subscription, nil
}

// SubscriberTokens returns every push token of every subscriber of owner
func (srv *subscriptionService) SubscriberTokens(ctx context.Context, ownerExternalID string) ([]*entity.DeviceToken, error) {
	owner, err := srv.deviceRepo.FindByExternalID(ctx, ownerExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.DeviceToken{}, nil
		}

		return nil, errors.Wrap(err, "failed to find owner device")
	}

	tokens, err := srv.subscriptionRepo.FindSubscriberTokens(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscriber tokens")
	}

	return tokens, nil
}

// Unsubscribe removes the edge owner -> subscriber
func (srv *subscriptionService) Unsubscribe(ctx context.Context, ownerExternalID, subscriberExternalID string) error {
	owner, err := srv.findDevice(ctx, ownerExternalID)
	if err != nil {
		return err
	}
	subscriber, err := srv.findDevice(ctx, subscriberExternalID)
	if err != nil {
		return err
	}

	if err := srv.subscriptionRepo.DeleteByPair(ctx, owner.ID, subscriber.ID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(domainerrors.ErrSubscriptionNotFound, "subscription not found")
		}

		return errors.Wrap(err, "failed to delete subscription")
	}

	srv.log(ctx).Info("Subscription removed",
		slog.String("owner_device_id", ownerExternalID),
		slog.String("subscriber_device_id", subscriberExternalID),
	)

	return nil
}

// findDevice resolves a device for Unsubscribe; a missing device means a missing edge.
func (srv *subscriptionService) findDevice(ctx context.Context, externalID string) (*entity.Device, error) {
	device, err := srv.deviceRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSubscriptionNotFound, "device not found")
		}

		return nil, errors.Wrap(err, "failed to find device")
	}

	return device, nil
}

// ListSubscribers returns the devices subscribed to owner
func (srv *subscriptionService) ListSubscribers(ctx context.Context, ownerExternalID string) ([]*entity.Device, error) {
	owner, err := srv.deviceRepo.FindByExternalID(ctx, ownerExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.Device{}, nil
		}

		return nil, errors.Wrap(err, "failed to find owner device")
	}

	subscribers, err := srv.subscriptionRepo.FindSubscribers(ctx, owner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscribers")
	}

	return subscribers, nil
}

// ListSubscriptions returns the owners subscriber is subscribed to
func (srv *subscriptionService) ListSubscriptions(ctx context.Context, subscriberExternalID string) ([]*entity.Device, error) {
	subscriber, err := srv.deviceRepo.FindByExternalID(ctx, subscriberExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return []*entity.Device{}, nil
		}

		return nil, errors.Wrap(err, "failed to find subscriber device")
	}

	owners, err := srv.subscriptionRepo.FindOwners(ctx, subscriber.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription owners")
	}

	return owners, nil
}
