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

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Create appends a location sample.
func (repo *locationRepository) Create(ctx context.Context, event *entity.LocationEvent) error {
	eventM := fromLocationDomain(event)
	eventM.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeviceNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// FindLatestByDevice returns the sample with the greatest timestamp.
func (repo *locationRepository) FindLatestByDevice(ctx context.Context, deviceID uuid.UUID) (*entity.LocationEvent, error) {
	var eventM model.LocationEventModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		Order("created_at DESC").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&eventM), nil
}

// FindHistoryByDevice returns up to limit samples, newest first.
func (repo *locationRepository) FindHistoryByDevice(ctx context.Context, deviceID uuid.UUID, limit int) ([]*entity.LocationEvent, error) {
	var eventModels []*model.LocationEventModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("timestamp DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location history")
	}

	events := make([]*entity.LocationEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toLocationDomain(eventM))
	}

	return events, nil
}

func toLocationDomain(data *model.LocationEventModel) *entity.LocationEvent {
	if data == nil {
		return nil
	}

	return &entity.LocationEvent{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Timestamp: data.Timestamp,
		CreatedAt: data.CreatedAt,
	}
}

func fromLocationDomain(data *entity.LocationEvent) *model.LocationEventModel {
	if data == nil {
		return nil
	}

	return &model.LocationEventModel{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Accuracy:  data.Accuracy,
		Timestamp: data.Timestamp,
		CreatedAt: data.CreatedAt,
	}
}
