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

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository is the constructor for alertRepository.
func NewAlertRepository(db *gorm.DB) repository.AlertRepository {
	return &alertRepository{
		db: db,
	}
}

// Create stores a new alert event.
func (repo *alertRepository) Create(ctx context.Context, alert *entity.AlertEvent) error {
	alertM := &model.AlertEventModel{
		DeviceID:  alert.DeviceID,
		Type:      alert.Type,
		Timestamp: alert.Timestamp,
		Latitude:  alert.Latitude,
		Longitude: alert.Longitude,
		CreatedAt: time.Now().UTC(),
	}

	if err := repo.db.WithContext(ctx).Create(alertM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create alert event")
	}

	alert.ID = alertM.ID
	alert.CreatedAt = alertM.CreatedAt

	return nil
}

// FindByDevice returns up to limit alerts of a device, newest first.
func (repo *alertRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.AlertEvent, error) {
	var alertModels []*model.AlertEventModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&alertModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find alert events")
	}

	alerts := make([]*entity.AlertEvent, 0, len(alertModels))
	for _, alertM := range alertModels {
		alerts = append(alerts, &entity.AlertEvent{
			ID:        alertM.ID,
			DeviceID:  alertM.DeviceID,
			Type:      alertM.Type,
			Timestamp: alertM.Timestamp,
			Latitude:  alertM.Latitude,
			Longitude: alertM.Longitude,
			CreatedAt: alertM.CreatedAt,
		})
	}

	return alerts, nil
}
