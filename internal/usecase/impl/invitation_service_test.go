package impl

import (
	"context"
	"testing"
	"time"

	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	"seguridad/internal/infra/metrics"
	mockRepo "seguridad/internal/mocks/repository"
	mockSvc "seguridad/internal/mocks/service"
	"seguridad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var invitationNow = time.Date(2025, 5, 10, 15, 0, 0, 0, time.UTC)

type invitationServiceFixtures struct {
	service        usecase.InvitationUsecase
	txManager      *mockRepo.MockTransactionManager
	deviceRepo     *mockRepo.MockDeviceRepository
	invitationRepo *mockRepo.MockInvitationRepository
	codeGenerator  *mockSvc.MockCodeGenerator
	qrcodeService  *mockSvc.MockQRCodeService
}

func createTestInvitationService(t *testing.T) invitationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	invitationRepo := mockRepo.NewMockInvitationRepository(t)
	codeGenerator := mockSvc.NewMockCodeGenerator(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	cfg := testConfig()
	cfg.Invitation.TTL = 7 * 24 * time.Hour
	cfg.Invitation.CodeLength = 6
	cfg.Invitation.MaxAttempts = 3
	cfg.Invitation.FallbackBytes = 4

	service := NewInvitationService(InvitationServiceParams{
		TxManager:      txManager,
		DeviceRepo:     deviceRepo,
		InvitationRepo: invitationRepo,
		CodeGenerator:  codeGenerator,
		QRCodeService:  qrcodeService,
		Config:         cfg,
		Logger:         discardLogger(),
	})
	service.(*invitationService).now = func() time.Time { return invitationNow }

	return invitationServiceFixtures{
		service:        service,
		txManager:      txManager,
		deviceRepo:     deviceRepo,
		invitationRepo: invitationRepo,
		codeGenerator:  codeGenerator,
		qrcodeService:  qrcodeService,
	}
}

func TestInvitationService_IssueInvitation(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		fx.codeGenerator.EXPECT().NumericCode(6).Return("482913", nil).Once()
		txInvitationRepo.EXPECT().CodeExists(ctx, "482913").Return(false, nil)
		txInvitationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Invitation")).Return(nil)
	})

	invitation, err := fx.service.IssueInvitation(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, invitation.OwnerDeviceID)
	assert.Equal(t, "482913", invitation.Code)
	assert.Equal(t, invitationNow.Add(7*24*time.Hour), invitation.ExpiresAt)
}

func TestInvitationService_IssueInvitation_RetriesOnCollision(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		fx.codeGenerator.EXPECT().NumericCode(6).Return("111111", nil).Once()
		fx.codeGenerator.EXPECT().NumericCode(6).Return("222222", nil).Once()
		txInvitationRepo.EXPECT().CodeExists(ctx, "111111").Return(true, nil)
		txInvitationRepo.EXPECT().CodeExists(ctx, "222222").Return(false, nil)
		txInvitationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Invitation")).Return(nil)
	})

	invitation, err := fx.service.IssueInvitation(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, "222222", invitation.Code)
}

func TestInvitationService_IssueInvitation_HexFallback(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		fx.codeGenerator.EXPECT().NumericCode(6).Return("999999", nil).Times(3)
		txInvitationRepo.EXPECT().CodeExists(ctx, "999999").Return(true, nil).Times(3)
		fx.codeGenerator.EXPECT().HexCode(4).Return("9f3a0c1e", nil).Once()
		txInvitationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Invitation")).Return(nil)
	})

	invitation, err := fx.service.IssueInvitation(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, "9f3a0c1e", invitation.Code)
}

func TestInvitationService_IssueInvitation_UpsertError(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		fx.codeGenerator.EXPECT().NumericCode(6).Return("482913", nil)
		txInvitationRepo.EXPECT().CodeExists(ctx, "482913").Return(false, nil)
		txInvitationRepo.EXPECT().Upsert(ctx, mock.Anything).Return(repository.ErrDuplicateInvitationCode)
	})

	invitation, err := fx.service.IssueInvitation(ctx, "owner")
	require.Error(t, err)
	assert.Nil(t, invitation)
	assert.True(t, errors.Is(err, repository.ErrDuplicateInvitationCode))
}

func TestInvitationService_GetInvitation(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	current := &entity.Invitation{ID: uuid.New(), OwnerDeviceID: owner.ID, Code: "482913"}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
	fx.invitationRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(current, nil)

	invitation, err := fx.service.GetInvitation(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, current, invitation)
}

func TestInvitationService_GetInvitation_NotFound(t *testing.T) {
	t.Run("unknown owner", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByExternalID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)

		_, err := fx.service.GetInvitation(ctx, "ghost")
		assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotFound))
	})

	t.Run("never issued", func(t *testing.T) {
		fx := createTestInvitationService(t)
		ctx := context.Background()
		owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}

		fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
		fx.invitationRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(nil, repository.ErrInvitationNotFound)

		_, err := fx.service.GetInvitation(ctx, "owner")
		assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotFound))
	})
}

func TestInvitationService_RedeemInvitation(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}
	invitation := &entity.Invitation{
		ID:            uuid.New(),
		OwnerDeviceID: owner.ID,
		Code:          "482913",
		ExpiresAt:     invitationNow.Add(time.Hour),
	}
	before := testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeRedeemed))

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		txSubRepo := mockRepo.NewMockSubscriptionRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewSubscriptionRepository().Return(txSubRepo)

		txInvitationRepo.EXPECT().FindByCode(ctx, "482913").Return(invitation, nil)
		txDeviceRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
		txDeviceRepo.EXPECT().Ensure(ctx, "subscriber", "").Return(subscriber, nil)
		txSubRepo.EXPECT().FindByPair(ctx, owner.ID, subscriber.ID).Return(nil, repository.ErrSubscriptionNotFound)
		txSubRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)
	})

	ownerExternalID, err := fx.service.RedeemInvitation(ctx, "482913", "subscriber")
	require.NoError(t, err)
	assert.Equal(t, "owner", ownerExternalID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeRedeemed)))
}

func TestInvitationService_RedeemInvitation_UnknownCode(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	before := testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeInvalid))

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		txInvitationRepo.EXPECT().FindByCode(ctx, "000000").Return(nil, repository.ErrInvitationNotFound)
	})

	ownerExternalID, err := fx.service.RedeemInvitation(ctx, "000000", "subscriber")
	require.Error(t, err)
	assert.Empty(t, ownerExternalID)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationInvalid))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeInvalid)))
}

func TestInvitationService_RedeemInvitation_Expired(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	invitation := &entity.Invitation{
		ID:            uuid.New(),
		OwnerDeviceID: uuid.New(),
		Code:          "482913",
		ExpiresAt:     invitationNow.Add(-time.Minute),
	}
	before := testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeExpired))

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		txInvitationRepo.EXPECT().FindByCode(ctx, "482913").Return(invitation, nil)
	})

	_, err := fx.service.RedeemInvitation(ctx, "482913", "subscriber")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationInvalid))
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.InvitationRedemptions.WithLabelValues(metrics.OutcomeExpired)))
}

func TestInvitationService_RedeemInvitation_OwnCode(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	invitation := &entity.Invitation{
		ID:            uuid.New(),
		OwnerDeviceID: owner.ID,
		Code:          "482913",
		ExpiresAt:     invitationNow.Add(time.Hour),
	}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)

		txInvitationRepo.EXPECT().FindByCode(ctx, "482913").Return(invitation, nil)
		txDeviceRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
	})

	_, err := fx.service.RedeemInvitation(ctx, "482913", "owner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfSubscription))
}

func TestInvitationService_RedeemInvitation_ExistingEdge(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}
	invitation := &entity.Invitation{
		ID:            uuid.New(),
		OwnerDeviceID: owner.ID,
		Code:          "482913",
		ExpiresAt:     invitationNow.Add(time.Hour),
	}
	existing := &entity.Subscription{ID: uuid.New(), OwnerDeviceID: owner.ID, SubscriberDeviceID: subscriber.ID}

	for range 2 {
		expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			txSubRepo := mockRepo.NewMockSubscriptionRepository(t)
			factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
			factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
			factory.EXPECT().NewSubscriptionRepository().Return(txSubRepo)

			txInvitationRepo.EXPECT().FindByCode(ctx, "482913").Return(invitation, nil)
			txDeviceRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
			txDeviceRepo.EXPECT().Ensure(ctx, "subscriber", "").Return(subscriber, nil)
			txSubRepo.EXPECT().FindByPair(ctx, owner.ID, subscriber.ID).Return(existing, nil)
		})
	}

	for range 2 {
		ownerExternalID, err := fx.service.RedeemInvitation(ctx, "482913", "subscriber")
		require.NoError(t, err)
		assert.Equal(t, "owner", ownerExternalID)
	}
}

func TestInvitationService_IssueInvitation_RotatesCode(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	var stored []*entity.Invitation

	fx.codeGenerator.EXPECT().NumericCode(6).Return("111111", nil).Once()
	fx.codeGenerator.EXPECT().NumericCode(6).Return("222222", nil).Once()
	for _, code := range []string{"111111", "222222"} {
		expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
			txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
			txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
			factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
			factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)

			txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
			txInvitationRepo.EXPECT().CodeExists(ctx, code).Return(false, nil)
			txInvitationRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.Invitation")).
				Run(func(_ context.Context, invitation *entity.Invitation) {
					stored = append(stored, invitation)
				}).
				Return(nil)
		})
	}

	first, err := fx.service.IssueInvitation(ctx, "owner")
	require.NoError(t, err)
	second, err := fx.service.IssueInvitation(ctx, "owner")
	require.NoError(t, err)

	require.Len(t, stored, 2)
	assert.Equal(t, owner.ID, stored[0].OwnerDeviceID)
	assert.Equal(t, owner.ID, stored[1].OwnerDeviceID)
	assert.NotEqual(t, stored[0].Code, stored[1].Code)
	assert.Equal(t, "111111", first.Code)
	assert.Equal(t, "222222", second.Code)

	// the replaced code no longer resolves
	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		txInvitationRepo.EXPECT().FindByCode(ctx, "111111").Return(nil, repository.ErrInvitationNotFound)
	})

	_, err = fx.service.RedeemInvitation(ctx, "111111", "subscriber")
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationInvalid))
}

func TestInvitationService_GenerateInvitationQR(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
	fx.invitationRepo.EXPECT().FindByOwner(ctx, owner.ID).Return(&entity.Invitation{Code: "482913"}, nil)
	fx.qrcodeService.EXPECT().GenerateInvitationQR("482913").Return(png, nil)

	result, err := fx.service.GenerateInvitationQR(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, png, result)
}

func TestInvitationService_RedeemInvitationQR_InvalidPayload(t *testing.T) {
	fx := createTestInvitationService(t)

	fx.qrcodeService.EXPECT().ParseInvitationQR("garbage").Return("", errors.New("unrecognized QR payload"))

	_, err := fx.service.RedeemInvitationQR(context.Background(), "garbage", "subscriber")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrInvitationQRInvalid.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, "unrecognized QR payload", appErr.Details())
}

func TestInvitationService_RedeemInvitationQR(t *testing.T) {
	fx := createTestInvitationService(t)

	ctx := context.Background()

	fx.qrcodeService.EXPECT().ParseInvitationQR(`{"type":"invitation","code":"000000"}`).Return("000000", nil)
	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txInvitationRepo := mockRepo.NewMockInvitationRepository(t)
		factory.EXPECT().NewInvitationRepository().Return(txInvitationRepo)
		txInvitationRepo.EXPECT().FindByCode(ctx, "000000").Return(nil, repository.ErrInvitationNotFound)
	})

	_, err := fx.service.RedeemInvitationQR(ctx, `{"type":"invitation","code":"000000"}`, "subscriber")
	assert.True(t, errors.Is(err, domainerrors.ErrInvitationInvalid))
}
