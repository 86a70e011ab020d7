package impl

import (
	"context"
	"testing"

	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/domain/repository"
	mockRepo "seguridad/internal/mocks/repository"
	"seguridad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service          usecase.SubscriptionUsecase
	txManager        *mockRepo.MockTransactionManager
	deviceRepo       *mockRepo.MockDeviceRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	service := NewSubscriptionService(SubscriptionServiceParams{
		TxManager:        txManager,
		DeviceRepo:       deviceRepo,
		SubscriptionRepo: subscriptionRepo,
		Logger:           discardLogger(),
	})

	return subscriptionServiceFixtures{
		service:          service,
		txManager:        txManager,
		deviceRepo:       deviceRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func TestSubscriptionService_Subscribe_NewEdge(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txSubRepo := mockRepo.NewMockSubscriptionRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewSubscriptionRepository().Return(txSubRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		txDeviceRepo.EXPECT().Ensure(ctx, "subscriber", "").Return(subscriber, nil)
		txSubRepo.EXPECT().FindByPair(ctx, owner.ID, subscriber.ID).Return(nil, repository.ErrSubscriptionNotFound)
		txSubRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscription")).Return(nil)
	})

	subscription, err := fx.service.Subscribe(ctx, "owner", "subscriber")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, subscription.OwnerDeviceID)
	assert.Equal(t, subscriber.ID, subscription.SubscriberDeviceID)
}

func TestSubscriptionService_Subscribe_ExistingEdge(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}
	existing := &entity.Subscription{ID: uuid.New(), OwnerDeviceID: owner.ID, SubscriberDeviceID: subscriber.ID}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txSubRepo := mockRepo.NewMockSubscriptionRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewSubscriptionRepository().Return(txSubRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "owner", "").Return(owner, nil)
		txDeviceRepo.EXPECT().Ensure(ctx, "subscriber", "").Return(subscriber, nil)
		txSubRepo.EXPECT().FindByPair(ctx, owner.ID, subscriber.ID).Return(existing, nil)
	})

	subscription, err := fx.service.Subscribe(ctx, "owner", "subscriber")
	require.NoError(t, err)
	assert.Same(t, existing, subscription)
}

func TestSubscriptionService_Subscribe_Self(t *testing.T) {
	fx := createTestSubscriptionService(t)

	subscription, err := fx.service.Subscribe(context.Background(), "same", "same")
	require.Error(t, err)
	assert.Nil(t, subscription)
	assert.True(t, errors.Is(err, domainerrors.ErrSelfSubscription))
}

func TestSubscriptionService_SubscriberTokens(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	tokens := []*entity.DeviceToken{
		{ID: uuid.New(), Token: "tok-1", Environment: entity.PushEnvironmentSandbox},
		{ID: uuid.New(), Token: "tok-2", Environment: entity.PushEnvironmentProduction},
	}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
	fx.subscriptionRepo.EXPECT().FindSubscriberTokens(ctx, owner.ID).Return(tokens, nil)

	result, err := fx.service.SubscriberTokens(ctx, "owner")
	require.NoError(t, err)
	assert.Equal(t, tokens, result)
}

func TestSubscriptionService_SubscriberTokens_UnknownOwner(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.SubscriberTokens(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "subscriber").Return(subscriber, nil)
	fx.subscriptionRepo.EXPECT().DeleteByPair(ctx, owner.ID, subscriber.ID).Return(nil)

	require.NoError(t, fx.service.Unsubscribe(ctx, "owner", "subscriber"))
}

func TestSubscriptionService_Unsubscribe_NotFound(t *testing.T) {
	t.Run("unknown device", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()

		fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(nil, repository.ErrDeviceNotFound)

		err := fx.service.Unsubscribe(ctx, "owner", "subscriber")
		assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
	})

	t.Run("no edge", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		ctx := context.Background()
		owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
		subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}

		fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
		fx.deviceRepo.EXPECT().FindByExternalID(ctx, "subscriber").Return(subscriber, nil)
		fx.subscriptionRepo.EXPECT().DeleteByPair(ctx, owner.ID, subscriber.ID).Return(repository.ErrSubscriptionNotFound)

		err := fx.service.Unsubscribe(ctx, "owner", "subscriber")
		assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
	})
}

func TestSubscriptionService_ListSubscribersAndSubscriptions(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()
	owner := &entity.Device{ID: uuid.New(), ExternalID: "owner"}
	subscriber := &entity.Device{ID: uuid.New(), ExternalID: "subscriber"}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "owner").Return(owner, nil)
	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "subscriber").Return(subscriber, nil)
	fx.subscriptionRepo.EXPECT().FindSubscribers(ctx, owner.ID).Return([]*entity.Device{subscriber}, nil)
	fx.subscriptionRepo.EXPECT().FindOwners(ctx, subscriber.ID).Return([]*entity.Device{owner}, nil)

	subscribers, err := fx.service.ListSubscribers(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, subscribers, 1)
	assert.Equal(t, "subscriber", subscribers[0].ExternalID)

	owners, err := fx.service.ListSubscriptions(ctx, "subscriber")
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, "owner", owners[0].ExternalID)
}

func TestSubscriptionService_ListSubscribers_UnknownDevice(t *testing.T) {
	fx := createTestSubscriptionService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "ghost").Return(nil, repository.ErrDeviceNotFound)

	subscribers, err := fx.service.ListSubscribers(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, subscribers)
}
