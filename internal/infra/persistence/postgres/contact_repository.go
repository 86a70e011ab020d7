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

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Upsert updates the name of the (device, phone) contact or inserts it.
func (repo *contactRepository) Upsert(ctx context.Context, contact *entity.Contact) error {
	now := time.Now().UTC()

	var contactM model.ContactModel
	err := repo.db.WithContext(ctx).
		Where("device_id = ? AND phone = ?", contact.DeviceID, contact.Phone).
		First(&contactM).Error

	switch {
	case err == nil:
		if err := repo.db.WithContext(ctx).
			Model(&model.ContactModel{}).
			Where("id = ?", contactM.ID).
			Updates(map[string]any{
				"name":       contact.Name,
				"updated_at": now,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to update contact")
		}

		contact.ID = contactM.ID
		contact.CreatedAt = contactM.CreatedAt
		contact.UpdatedAt = now

	case errors.Is(err, gorm.ErrRecordNotFound):
		contactM = model.ContactModel{
			DeviceID:  contact.DeviceID,
			Name:      contact.Name,
			Phone:     contact.Phone,
			CreatedAt: now,
			UpdatedAt: now,
		}

		if err := repo.db.WithContext(ctx).Create(&contactM).Error; err != nil {
			if isUniqueConstraintViolation(err) {
				return repository.ErrDuplicateContact
			}
			if isForeignKeyConstraintViolation(err) {
				return repository.ErrDeviceNotFound
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create contact")
		}

		contact.ID = contactM.ID
		contact.CreatedAt = now
		contact.UpdatedAt = now

	default:
		return errors.Wrap(err, "failed to find contact")
	}

	return nil
}

// FindByDevice lists the contacts of a device, most recently created first.
func (repo *contactRepository) FindByDevice(ctx context.Context, deviceID uuid.UUID) ([]*entity.Contact, error) {
	var contactModels []*model.ContactModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&contactModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find contacts")
	}

	contacts := make([]*entity.Contact, 0, len(contactModels))
	for _, contactM := range contactModels {
		contacts = append(contacts, toContactDomain(contactM))
	}

	return contacts, nil
}

func toContactDomain(data *model.ContactModel) *entity.Contact {
	if data == nil {
		return nil
	}

	return &entity.Contact{
		ID:        data.ID,
		DeviceID:  data.DeviceID,
		Name:      data.Name,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
