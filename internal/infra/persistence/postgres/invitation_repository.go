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
	"gorm.io/plugin/dbresolver"
)

const invitationCodeConstraint = "uq_invitations_code"

type invitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository is the constructor for invitationRepository.
func NewInvitationRepository(db *gorm.DB) repository.InvitationRepository {
	return &invitationRepository{
		db: db,
	}
}

// Upsert replaces the owner's code and expiry, or creates the invitation.
func (repo *invitationRepository) Upsert(ctx context.Context, invitation *entity.Invitation) error {
	now := time.Now().UTC()

	var invM model.InvitationModel
	err := repo.db.WithContext(ctx).
		Where("owner_device_id = ?", invitation.OwnerDeviceID).
		First(&invM).Error

	switch {
	case err == nil:
		if err := repo.db.WithContext(ctx).
			Model(&model.InvitationModel{}).
			Where("id = ?", invM.ID).
			Updates(map[string]any{
				"code":       invitation.Code,
				"expires_at": invitation.ExpiresAt,
				"updated_at": now,
			}).Error; err != nil {
			return repo.mapWriteError(err, "failed to update invitation")
		}

		invitation.ID = invM.ID
		invitation.CreatedAt = invM.CreatedAt
		invitation.UpdatedAt = now

	case errors.Is(err, gorm.ErrRecordNotFound):
		invM = model.InvitationModel{
			OwnerDeviceID: invitation.OwnerDeviceID,
			Code:          invitation.Code,
			ExpiresAt:     invitation.ExpiresAt,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		if err := repo.db.WithContext(ctx).Create(&invM).Error; err != nil {
			return repo.mapWriteError(err, "failed to create invitation")
		}

		invitation.ID = invM.ID
		invitation.CreatedAt = now
		invitation.UpdatedAt = now

	default:
		return errors.Wrap(err, "failed to find invitation by owner")
	}

	return nil
}

func (repo *invitationRepository) mapWriteError(err error, msg string) error {
	if constraint := violatedUniqueConstraint(err); constraint == invitationCodeConstraint {
		return repository.ErrDuplicateInvitationCode
	}
	if isForeignKeyConstraintViolation(err) {
		return repository.ErrDeviceNotFound
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

// FindByOwner retrieves the owner's current invitation.
func (repo *invitationRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Invitation, error) {
	var invM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Where("owner_device_id = ?", ownerID).
		First(&invM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by owner")
	}

	return toInvitationDomain(&invM), nil
}

// FindByCode retrieves an invitation by code from the primary, so a freshly rotated code is visible.
func (repo *invitationRepository) FindByCode(ctx context.Context, code string) (*entity.Invitation, error) {
	var invM model.InvitationModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("code = ?", code).
		First(&invM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvitationNotFound
		}

		return nil, errors.Wrap(err, "failed to find invitation by code")
	}

	return toInvitationDomain(&invM), nil
}

// CodeExists reports whether any invitation, expired or not, holds code.
func (repo *invitationRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.InvitationModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check invitation code")
	}

	return count > 0, nil
}

func toInvitationDomain(data *model.InvitationModel) *entity.Invitation {
	if data == nil {
		return nil
	}

	return &entity.Invitation{
		ID:            data.ID,
		OwnerDeviceID: data.OwnerDeviceID,
		Code:          data.Code,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
