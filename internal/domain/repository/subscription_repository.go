package repository

import (
	"context"

	"seguridad/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrSubscriptionNotFound is returned when no edge exists for an (owner, subscriber) pair.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrDuplicateSubscription is returned when a racing insert already created the edge.
	ErrDuplicateSubscription = errors.New("subscription already exists")
)

// SubscriptionRepository defines the interface for the subscription graph.
type SubscriptionRepository interface {
	// FindByPair retrieves the edge from owner to subscriber.
	FindByPair(ctx context.Context, ownerID, subscriberID uuid.UUID) (*entity.Subscription, error)

	// Create stores a new edge.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// DeleteByPair removes the edge from owner to subscriber.
	DeleteByPair(ctx context.Context, ownerID, subscriberID uuid.UUID) error

	// FindSubscriberTokens returns every push token held by a subscriber of owner.
	FindSubscriberTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error)

	// FindSubscribers returns the devices subscribed to owner.
	FindSubscribers(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// FindOwners returns the devices subscriber is subscribed to.
	FindOwners(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Device, error)
}
