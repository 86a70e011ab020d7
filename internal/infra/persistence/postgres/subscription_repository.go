package postgres

import (
	"context"
	"time"

	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	"seguridad/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindByPair retrieves the edge from owner to subscriber.
func (repo *subscriptionRepository) FindByPair(ctx context.Context, ownerID, subscriberID uuid.UUID) (*entity.Subscription, error) {
	var subM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("owner_device_id = ? AND subscriber_device_id = ?", ownerID, subscriberID).
		First(&subM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return toSubscriptionDomain(&subM), nil
}

// Create stores a new edge.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subM := &model.SubscriptionModel{
		OwnerDeviceID:      subscription.OwnerDeviceID,
		SubscriberDeviceID: subscription.SubscriberDeviceID,
		CreatedAt:          time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSubscription
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subM.ID
	subscription.CreatedAt = subM.CreatedAt

	return nil
}

// DeleteByPair removes the edge from owner to subscriber.
func (repo *subscriptionRepository) DeleteByPair(ctx context.Context, ownerID, subscriberID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("owner_device_id = ? AND subscriber_device_id = ?", ownerID, subscriberID).
		Delete(&model.SubscriptionModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindSubscriberTokens returns every push token held by a subscriber of owner.
func (repo *subscriptionRepository) FindSubscriberTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Select("device_tokens.*").
		Joins("JOIN subscriptions ON subscriptions.subscriber_device_id = device_tokens.device_id").
		Where("subscriptions.owner_device_id = ?", ownerID).
		Order("device_tokens.last_seen_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriber tokens")
	}

	return toDeviceTokensDomain(tokenModels), nil
}

// FindSubscribers returns the devices subscribed to owner.
func (repo *subscriptionRepository) FindSubscribers(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Select("devices.*").
		Joins("JOIN subscriptions ON subscriptions.subscriber_device_id = devices.id").
		Where("subscriptions.owner_device_id = ?", ownerID).
		Order("subscriptions.created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscribers")
	}

	return toDevicesDomain(deviceModels), nil
}

// FindOwners returns the devices subscriber is subscribed to.
func (repo *subscriptionRepository) FindOwners(ctx context.Context, subscriberID uuid.UUID) ([]*entity.Device, error) {
	var deviceModels []*model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Model(&model.DeviceModel{}).
		Select("devices.*").
		Joins("JOIN subscriptions ON subscriptions.owner_device_id = devices.id").
		Where("subscriptions.subscriber_device_id = ?", subscriberID).
		Order("subscriptions.created_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscription owners")
	}

	return toDevicesDomain(deviceModels), nil
}

func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:                 data.ID,
		OwnerDeviceID:      data.OwnerDeviceID,
		SubscriberDeviceID: data.SubscriberDeviceID,
		CreatedAt:          data.CreatedAt,
	}
}
