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

type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// Upsert registers the token or repoints an existing one to token.DeviceID.
func (repo *deviceTokenRepository) Upsert(ctx context.Context, token *entity.DeviceToken) error {
	now := time.Now().UTC()

	var tokenM model.DeviceTokenModel
	err := repo.db.WithContext(ctx).
		Where("token = ?", token.Token).
		First(&tokenM).Error

	switch {
	case err == nil:
		if err := repo.db.WithContext(ctx).
			Model(&model.DeviceTokenModel{}).
			Where("id = ?", tokenM.ID).
			Updates(map[string]any{
				"device_id":    token.DeviceID,
				"environment":  string(token.Environment),
				"last_seen_at": now,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update device token")
		}

		token.ID = tokenM.ID
		token.CreatedAt = tokenM.CreatedAt
		token.LastSeenAt = now

	case errors.Is(err, gorm.ErrRecordNotFound):
		tokenM = model.DeviceTokenModel{
			DeviceID:    token.DeviceID,
			Token:       token.Token,
			Environment: string(token.Environment),
			CreatedAt:   now,
			LastSeenAt:  now,
		}

		if err := repo.db.WithContext(ctx).Create(&tokenM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateDeviceToken
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrDeviceNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create device token")
		}

		token.ID = tokenM.ID
		token.CreatedAt = now
		token.LastSeenAt = now

	default:
		return errors.Wrap(err, "failed to find device token")
	}

	return nil
}

// FindByDevice lists the tokens of a device, most recently seen first.
func (repo *deviceTokenRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("last_seen_at DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens")
	}

	return toDeviceTokensDomain(tokenModels), nil
}

// DeleteByToken removes a token by its value.
func (repo *deviceTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceTokenModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceTokenNotFound
	}

	return nil
}

func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:          data.ID,
		DeviceID:    data.DeviceID,
		Token:       data.Token,
		Environment: entity.PushEnvironment(data.Environment),
		CreatedAt:   data.CreatedAt,
		LastSeenAt:  data.LastSeenAt,
	}
}

func toDeviceTokensDomain(data []*model.DeviceTokenModel) []*entity.DeviceToken {
	tokens := make([]*entity.DeviceToken, 0, len(data))
	for _, tokenM := range data {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens
}
