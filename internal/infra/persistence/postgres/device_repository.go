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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// Ensure returns the device for externalID, creating it when absent and refreshing it otherwise.
func (repo *deviceRepository) Ensure(ctx context.Context, externalID, platform string) (*entity.Device, error) {
	now := time.Now().UTC()

	var deviceM model.DeviceModel
	err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&deviceM).Error

	switch {
	case err == nil:
		updates := map[string]any{"last_seen_at": now}
		if platform != "" {
			updates["platform"] = platform
		}

		if err := repo.db.WithContext(ctx).
			Model(&model.DeviceModel{}).
			Where("id = ?", deviceM.ID).
			Updates(updates).Error; err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to refresh device")
		}

		deviceM.LastSeenAt = now
		if platform != "" {
			deviceM.Platform = platform
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		if platform == "" {
			platform = entity.DefaultPlatform
		}
		deviceM = model.DeviceModel{
			ExternalID: externalID,
			Platform:   platform,
			CreatedAt:  now,
			LastSeenAt: now,
		}

		if err := repo.db.WithContext(ctx).Create(&deviceM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return nil, repository.ErrDuplicateDevice
			}

			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create device")
		}

	default:
		return nil, errors.Wrap(err, "failed to find device by external ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByExternalID retrieves a device by its client-supplied identifier.
func (repo *deviceRepository) FindByExternalID(ctx context.Context, externalID string) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by external ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindByID retrieves a device by its internal identity.
func (repo *deviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&deviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// DeleteByExternalID removes a device; child rows are removed by ON DELETE CASCADE.
func (repo *deviceRepository) DeleteByExternalID(ctx context.Context, externalID string) error {
	result := repo.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:         data.ID,
		ExternalID: data.ExternalID,
		Platform:   data.Platform,
		CreatedAt:  data.CreatedAt,
		LastSeenAt: data.LastSeenAt,
	}
}

func toDevicesDomain(data []*model.DeviceModel) []*entity.Device {
	devices := make([]*entity.Device, 0, len(data))
	for _, deviceM := range data {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices
}
