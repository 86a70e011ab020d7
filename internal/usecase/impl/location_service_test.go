package impl

import (
	"context"
	"testing"
	"time"

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

type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	txManager    *mockRepo.MockTransactionManager
	deviceRepo   *mockRepo.MockDeviceRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(LocationServiceParams{
		TxManager:    txManager,
		DeviceRepo:   deviceRepo,
		LocationRepo: locationRepo,
		Config:       testConfig(),
	})

	return locationServiceFixtures{
		service:      service,
		txManager:    txManager,
		deviceRepo:   deviceRepo,
		locationRepo: locationRepo,
	}
}

func TestLocationService_RecordLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc", Platform: entity.DefaultPlatform}
	sampledAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CLT", -3*60*60))
	input := &usecase.RecordLocationInput{
		DeviceID:  "device-abc",
		Latitude:  -33.4489,
		Longitude: -70.6693,
		Accuracy:  12.5,
		Timestamp: sampledAt,
	}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txLocationRepo := mockRepo.NewMockLocationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewLocationRepository().Return(txLocationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(device, nil)
		txLocationRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.LocationEvent")).
			Run(func(_ context.Context, event *entity.LocationEvent) {
				event.ID = uuid.New()
			}).
			Return(nil)
	})

	event, err := fx.service.RecordLocation(ctx, input)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, device.ID, event.DeviceID)
	assert.Equal(t, -33.4489, event.Latitude)
	assert.Equal(t, -70.6693, event.Longitude)
	assert.Equal(t, 12.5, event.Accuracy)
	assert.True(t, sampledAt.Equal(event.Timestamp))
	assert.Equal(t, time.UTC, event.Timestamp.Location())
}

func TestLocationService_RecordLocation_CreateError(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txLocationRepo := mockRepo.NewMockLocationRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewLocationRepository().Return(txLocationRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(device, nil)
		txLocationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	})

	event, err := fx.service.RecordLocation(ctx, &usecase.RecordLocationInput{DeviceID: "device-abc", Timestamp: time.Now()})
	require.Error(t, err)
	assert.Nil(t, event)
	assert.Contains(t, err.Error(), "failed to create location event")
}

func TestLocationService_GetLatestLocation(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}
	latest := &entity.LocationEvent{ID: uuid.New(), DeviceID: device.ID, Latitude: 1, Longitude: 2}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "device-abc").Return(device, nil)
	fx.locationRepo.EXPECT().FindLatestByDevice(ctx, device.ID).Return(latest, nil)

	event, err := fx.service.GetLatestLocation(ctx, "device-abc")
	require.NoError(t, err)
	assert.Equal(t, latest, event)
}

func TestLocationService_GetLatestLocation_UnknownDevice(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	event, err := fx.service.GetLatestLocation(ctx, "missing")
	require.Error(t, err)
	assert.Nil(t, event)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_GetLatestLocation_NoSamples(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "device-abc").Return(device, nil)
	fx.locationRepo.EXPECT().FindLatestByDevice(ctx, device.ID).Return(nil, repository.ErrLocationNotFound)

	_, err := fx.service.GetLatestLocation(ctx, "device-abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestLocationService_GetLocationHistory_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     *int
		wantLimit int
	}{
		{name: "default when absent", limit: nil, wantLimit: 100},
		{name: "explicit limit", limit: intPtr(10), wantLimit: 10},
		{name: "clamped above maximum", limit: intPtr(2500), wantLimit: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestLocationService(t)
			ctx := context.Background()
			device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}
			history := []*entity.LocationEvent{{ID: uuid.New()}, {ID: uuid.New()}}

			fx.deviceRepo.EXPECT().FindByExternalID(ctx, "device-abc").Return(device, nil)
			fx.locationRepo.EXPECT().FindHistoryByDevice(ctx, device.ID, tt.wantLimit).Return(history, nil)

			events, err := fx.service.GetLocationHistory(ctx, "device-abc", tt.limit)
			require.NoError(t, err)
			assert.Len(t, events, 2)
		})
	}
}

func TestLocationService_GetLocationHistory_ZeroLimit(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	events, err := fx.service.GetLocationHistory(ctx, "device-abc", intPtr(0))
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	fx.locationRepo.AssertNotCalled(t, "FindHistoryByDevice", mock.Anything, mock.Anything, mock.Anything)
}

func TestLocationService_GetLocationHistory_UnknownDevice(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	events, err := fx.service.GetLocationHistory(ctx, "missing", intPtr(10))
	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}
