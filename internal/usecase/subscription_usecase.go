package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// SubscriptionUsecase defines the interface for the subscription graph use cases
type SubscriptionUsecase interface {
	// Subscribe creates the edge owner -> subscriber, returning the existing one when present
	Subscribe(ctx context.Context, ownerExternalID, subscriberExternalID string) (*entity.Subscription, error)

	// SubscriberTokens returns every push token of every subscriber of owner
	SubscriberTokens(ctx context.Context, ownerExternalID string) ([]*entity.DeviceToken, error)

	// Unsubscribe removes the edge owner -> subscriber
	Unsubscribe(ctx context.Context, ownerExternalID, subscriberExternalID string) error

	// ListSubscribers returns the devices subscribed to owner
	ListSubscribers(ctx context.Context, ownerExternalID string) ([]*entity.Device, error)

	// ListSubscriptions returns the owners subscriber is subscribed to
	ListSubscriptions(ctx context.Context, subscriberExternalID string) ([]*entity.Device, error)
}
