package impl

import (
	"context"
	"testing"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	mockRepo "seguridad/internal/mocks/repository"
	"seguridad/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type safeZoneServiceFixtures struct {
	service      usecase.SafeZoneUsecase
	txManager    *mockRepo.MockTransactionManager
	deviceRepo   *mockRepo.MockDeviceRepository
	safeZoneRepo *mockRepo.MockSafeZoneRepository
}

func createTestSafeZoneService(t *testing.T) safeZoneServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	safeZoneRepo := mockRepo.NewMockSafeZoneRepository(t)
	service := NewSafeZoneService(SafeZoneServiceParams{
		TxManager:    txManager,
		DeviceRepo:   deviceRepo,
		SafeZoneRepo: safeZoneRepo,
	})

	return safeZoneServiceFixtures{
		service:      service,
		txManager:    txManager,
		deviceRepo:   deviceRepo,
		safeZoneRepo: safeZoneRepo,
	}
}

func TestSafeZoneService_UpsertSafeZone(t *testing.T) {
	fx := createTestSafeZoneService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}
	input := &usecase.UpsertSafeZoneInput{
		DeviceID:     "device-abc",
		Name:         "Casa",
		Latitude:     -33.45,
		Longitude:    -70.66,
		RadiusMeters: 150,
		IsActive:     false,
	}

	var stored *entity.SafeZone
	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txZoneRepo := mockRepo.NewMockSafeZoneRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewSafeZoneRepository().Return(txZoneRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(device, nil)
		txZoneRepo.EXPECT().
			Upsert(ctx, mock.AnythingOfType("*entity.SafeZone")).
			Run(func(_ context.Context, zone *entity.SafeZone) {
				stored = zone
			}).
			Return(nil)
	})

	zone, err := fx.service.UpsertSafeZone(ctx, input)
	require.NoError(t, err)
	assert.Same(t, stored, zone)
	assert.Equal(t, device.ID, zone.DeviceID)
	assert.Equal(t, "Casa", zone.Name)
	assert.Equal(t, 150.0, zone.RadiusMeters)
	assert.False(t, zone.IsActive)
}

func TestSafeZoneService_UpsertSafeZone_RepositoryError(t *testing.T) {
	fx := createTestSafeZoneService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txZoneRepo := mockRepo.NewMockSafeZoneRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewSafeZoneRepository().Return(txZoneRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(device, nil)
		txZoneRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("write failed"))
	})

	zone, err := fx.service.UpsertSafeZone(ctx, &usecase.UpsertSafeZoneInput{DeviceID: "device-abc", Name: "Casa"})
	require.Error(t, err)
	assert.Nil(t, zone)
	assert.Contains(t, err.Error(), "failed to upsert safe zone")
}

func TestSafeZoneService_ListSafeZones(t *testing.T) {
	fx := createTestSafeZoneService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}
	zones := []*entity.SafeZone{{ID: uuid.New(), Name: "Colegio"}, {ID: uuid.New(), Name: "Casa"}}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "device-abc").Return(device, nil)
	fx.safeZoneRepo.EXPECT().FindByDevice(ctx, device.ID).Return(zones, nil)

	result, err := fx.service.ListSafeZones(ctx, "device-abc")
	require.NoError(t, err)
	assert.Equal(t, zones, result)
}

func TestSafeZoneService_ListSafeZones_UnknownDevice(t *testing.T) {
	fx := createTestSafeZoneService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.ListSafeZones(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, result)
}
