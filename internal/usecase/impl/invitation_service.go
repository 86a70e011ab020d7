package impl

import (
	"context"
	"log/slog"
	"time"

	"seguridad/config"
	deliverycontext "seguridad/internal/delivery/context"
	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/metrics"
	"seguridad/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type invitationService struct {
	txManager      repository.TransactionManager
	deviceRepo     repository.DeviceRepository
	invitationRepo repository.InvitationRepository
	codeGenerator  service.CodeGenerator
	qrcodeService  service.QRCodeService
	cfg            config.InvitationConfig
	logger         *slog.Logger
	now            func() time.Time
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	DeviceRepo     repository.DeviceRepository
	InvitationRepo repository.InvitationRepository
	CodeGenerator  service.CodeGenerator
	QRCodeService  service.QRCodeService
	Config         *config.Config
	Logger         *slog.Logger
}

// NewInvitationService creates a new invitation service instance
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		txManager:      params.TxManager,
		deviceRepo:     params.DeviceRepo,
		invitationRepo: params.InvitationRepo,
		codeGenerator:  params.CodeGenerator,
		qrcodeService:  params.QRCodeService,
		cfg:            params.Config.Invitation,
		logger:         params.Logger,
		now:            time.Now,
	}
}

func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueInvitation draws a fresh code for owner, replacing any previous one
func (srv *invitationService) IssueInvitation(ctx context.Context, ownerExternalID string) (*entity.Invitation, error) {
	var invitation *entity.Invitation
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.NewDeviceRepository().Ensure(ctx, ownerExternalID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure owner device")
		}

		invitationRepo := repoFactory.NewInvitationRepository()
		code, err := srv.drawCode(ctx, invitationRepo)
		if err != nil {
			return err
		}

		invitation = &entity.Invitation{
			OwnerDeviceID: owner.ID,
			Code:          code,
			ExpiresAt:     srv.now().UTC().Add(srv.cfg.TTL),
		}
		if err := invitationRepo.Upsert(ctx, invitation); err != nil {
			return errors.Wrap(err, "failed to upsert invitation")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue invitation")
	}

	srv.log(ctx).Info("Invitation issued",
		slog.String("owner_device_id", ownerExternalID),
		slog.Time("expires_at", invitation.ExpiresAt),
	)

	return invitation, nil
}

// drawCode tries numeric codes until one is free, then falls back to a hex code.
// Expired codes still occupy the keyspace.
func (srv *invitationService) drawCode(ctx context.Context, invitationRepo repository.InvitationRepository) (string, error) {
	for range srv.cfg.MaxAttempts {
		code, err := srv.codeGenerator.NumericCode(srv.cfg.CodeLength)
		if err != nil {
			return "", errors.Wrap(err, "failed to generate invitation code")
		}

		exists, err := invitationRepo.CodeExists(ctx, code)
		if err != nil {
			return "", errors.Wrap(err, "failed to check invitation code")
		}
		if !exists {
			return code, nil
		}
	}

	srv.log(ctx).Warn("Numeric invitation codes exhausted, using hex fallback",
		slog.Int("attempts", srv.cfg.MaxAttempts),
	)

	code, err := srv.codeGenerator.HexCode(srv.cfg.FallbackBytes)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate fallback invitation code")
	}

	return code, nil
}

// GetInvitation returns the owner's current invitation, expired or not
func (srv *invitationService) GetInvitation(ctx context.Context, ownerExternalID string) (*entity.Invitation, error) {
	owner, err := srv.deviceRepo.FindByExternalID(ctx, ownerExternalID)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvitationNotFound, "owner device not found")
		}

		return nil, errors.Wrap(err, "failed to find owner device")
	}

	invitation, err := srv.invitationRepo.FindByOwner(ctx, owner.ID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvitationNotFound, "no invitation issued")
		}

		return nil, errors.Wrap(err, "failed to find invitation")
	}

	return invitation, nil
}

// RedeemInvitation subscribes subscriber to the code's owner and returns the owner external id.
// Rejected codes change nothing.
func (srv *invitationService) RedeemInvitation(ctx context.Context, code, subscriberExternalID string) (string, error) {
	var ownerExternalID string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		invitation, err := repoFactory.NewInvitationRepository().FindByCode(ctx, code)
		if err != nil {
			if errors.Is(err, repository.ErrInvitationNotFound) {
				metrics.RecordRedemption(metrics.OutcomeInvalid)

				return errors.Wrap(domainerrors.ErrInvitationInvalid, "unknown invitation code")
			}

			return errors.Wrap(err, "failed to find invitation by code")
		}

		if invitation.IsExpired(srv.now()) {
			metrics.RecordRedemption(metrics.OutcomeExpired)

			return errors.Wrap(domainerrors.ErrInvitationInvalid, "invitation code expired")
		}

		deviceRepo := repoFactory.NewDeviceRepository()
		owner, err := deviceRepo.FindByID(ctx, invitation.OwnerDeviceID)
		if err != nil {
			return errors.Wrap(err, "failed to find invitation owner")
		}

		if owner.ExternalID == subscriberExternalID {
			metrics.RecordRedemption(metrics.OutcomeSelf)

			return errors.Wrap(domainerrors.ErrSelfSubscription, "owner redeemed own invitation")
		}

		subscriber, err := deviceRepo.Ensure(ctx, subscriberExternalID, "")
		if err != nil {
			return errors.Wrap(err, "failed to ensure subscriber device")
		}

		if _, err := linkDevices(ctx, repoFactory.NewSubscriptionRepository(), owner.ID, subscriber.ID); err != nil {
			return err
		}
		ownerExternalID = owner.ExternalID

		return nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to redeem invitation")
	}

	metrics.RecordRedemption(metrics.OutcomeRedeemed)
	srv.log(ctx).Info("Invitation redeemed",
		slog.String("owner_device_id", ownerExternalID),
		slog.String("subscriber_device_id", subscriberExternalID),
	)

	return ownerExternalID, nil
}

// GenerateInvitationQR renders the owner's current code as a PNG QR code
func (srv *invitationService) GenerateInvitationQR(ctx context.Context, ownerExternalID string) ([]byte, error) {
	invitation, err := srv.GetInvitation(ctx, ownerExternalID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcodeService.GenerateInvitationQR(invitation.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate invitation QR code")
	}

	return png, nil
}

// RedeemInvitationQR redeems the code carried by scanned QR content
func (srv *invitationService) RedeemInvitationQR(ctx context.Context, qrData, subscriberExternalID string) (string, error) {
	code, err := srv.qrcodeService.ParseInvitationQR(qrData)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrInvitationQRInvalid.WithDetails(err.Error()), "failed to parse invitation QR code")
	}

	return srv.RedeemInvitation(ctx, code, subscriberExternalID)
}
