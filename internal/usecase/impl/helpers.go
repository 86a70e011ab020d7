package impl

import (
	"context"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// normalizeLimit resolves an optional limit: nil selects def, negatives become 0,
// anything above maxLimit is clamped.
func normalizeLimit(limit *int, def, maxLimit int) int {
	if limit == nil {
		return def
	}

	return min(max(*limit, 0), maxLimit)
}

// linkDevices returns the owner -> subscriber edge, creating it when missing.
func linkDevices(ctx context.Context, subscriptionRepo repository.SubscriptionRepository, ownerID, subscriberID uuid.UUID) (*entity.Subscription, error) {
	existing, err := subscriptionRepo.FindByPair(ctx, ownerID, subscriberID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrSubscriptionNotFound) {
		return nil, errors.Wrap(err, "failed to find subscription by pair")
	}

	subscription := &entity.Subscription{
		OwnerDeviceID:      ownerID,
		SubscriberDeviceID: subscriberID,
	}
	if err := subscriptionRepo.Create(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to create subscription")
	}

	return subscription, nil
}
