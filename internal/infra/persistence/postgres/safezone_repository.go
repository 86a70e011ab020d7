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

type safeZoneRepository struct {
	db *gorm.DB
}

// NewSafeZoneRepository is the constructor for safeZoneRepository.
func NewSafeZoneRepository(db *gorm.DB) repository.SafeZoneRepository {
	return &safeZoneRepository{
		db: db,
	}
}

// Upsert updates the zone matching (device, name) in place or inserts it.
func (repo *safeZoneRepository) Upsert(ctx context.Context, zone *entity.SafeZone) error {
	now := time.Now().UTC()

	var zoneM model.SafeZoneModel
	err := repo.db.WithContext(ctx).
		Where("device_id = ? AND name = ?", zone.DeviceID, zone.Name).
		First(&zoneM).Error

	switch {
	case err == nil:
		// Map updates so that is_active=false is written.
		if err := repo.db.WithContext(ctx).
			Model(&model.SafeZoneModel{}).
			Where("id = ?", zoneM.ID).
			Updates(map[string]any{
				"latitude":      zone.Latitude,
				"longitude":     zone.Longitude,
				"radius_meters": zone.RadiusMeters,
				"is_active":     zone.IsActive,
				"updated_at":    now,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update safe zone")
		}

		zone.ID = zoneM.ID
		zone.CreatedAt = zoneM.CreatedAt
		zone.UpdatedAt = now

	case errors.Is(err, gorm.ErrRecordNotFound):
		zoneM = *fromSafeZoneDomain(zone)
		zoneM.ID = uuid.Nil
		zoneM.CreatedAt = now
		zoneM.UpdatedAt = now

		if err := repo.db.WithContext(ctx).Create(&zoneM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateSafeZone
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrDeviceNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create safe zone")
		}

		zone.ID = zoneM.ID
		zone.CreatedAt = zoneM.CreatedAt
		zone.UpdatedAt = zoneM.UpdatedAt

	default:
		return errors.Wrap(err, "failed to find safe zone")
	}

	return nil
}

// FindByDevice lists the zones of a device, most recently updated first.
func (repo *safeZoneRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.SafeZone, error) {
	var zoneModels []*model.SafeZoneModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("updated_at DESC").
		Find(&zoneModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find safe zones")
	}

	zones := make([]*entity.SafeZone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zones = append(zones, toSafeZoneDomain(zoneM))
	}

	return zones, nil
}

func toSafeZoneDomain(data *model.SafeZoneModel) *entity.SafeZone {
	if data == nil {
		return nil
	}

	return &entity.SafeZone{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Name:         data.Name,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromSafeZoneDomain(data *entity.SafeZone) *model.SafeZoneModel {
	if data == nil {
		return nil
	}

	return &model.SafeZoneModel{
		ID:           data.ID,
		DeviceID:     data.DeviceID,
		Name:         data.Name,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
