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

type contactServiceFixtures struct {
	service     usecase.ContactUsecase
	txManager   *mockRepo.MockTransactionManager
	deviceRepo  *mockRepo.MockDeviceRepository
	contactRepo *mockRepo.MockContactRepository
}

func createTestContactService(t *testing.T) contactServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	contactRepo := mockRepo.NewMockContactRepository(t)
	service := NewContactService(ContactServiceParams{
		TxManager:   txManager,
		DeviceRepo:  deviceRepo,
		ContactRepo: contactRepo,
	})

	return contactServiceFixtures{
		service:     service,
		txManager:   txManager,
		deviceRepo:  deviceRepo,
		contactRepo: contactRepo,
	}
}

func TestContactService_UpsertContact(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		txContactRepo := mockRepo.NewMockContactRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		factory.EXPECT().NewContactRepository().Return(txContactRepo)

		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(device, nil)
		txContactRepo.EXPECT().
			Upsert(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
				return c.DeviceID == device.ID && c.Phone == "+56911112222" && c.Name == "Mamá"
			})).
			Return(nil)
	})

	contact, err := fx.service.UpsertContact(ctx, &usecase.UpsertContactInput{
		DeviceID: "device-abc",
		Name:     "Mamá",
		Phone:    "+56911112222",
	})
	require.NoError(t, err)
	assert.Equal(t, device.ID, contact.DeviceID)
}

func TestContactService_UpsertContact_EnsureError(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		txDeviceRepo := mockRepo.NewMockDeviceRepository(t)
		factory.EXPECT().NewDeviceRepository().Return(txDeviceRepo)
		txDeviceRepo.EXPECT().Ensure(ctx, "device-abc", "").Return(nil, errors.New("db error"))
	})

	contact, err := fx.service.UpsertContact(ctx, &usecase.UpsertContactInput{DeviceID: "device-abc"})
	require.Error(t, err)
	assert.Nil(t, contact)
	assert.Contains(t, err.Error(), "failed to ensure device")
}

func TestContactService_ListContacts(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()
	device := &entity.Device{ID: uuid.New(), ExternalID: "device-abc"}
	contacts := []*entity.Contact{{ID: uuid.New(), Name: "Papá", Phone: "+56933334444"}}

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "device-abc").Return(device, nil)
	fx.contactRepo.EXPECT().FindByDevice(ctx, device.ID).Return(contacts, nil)

	result, err := fx.service.ListContacts(ctx, "device-abc")
	require.NoError(t, err)
	assert.Equal(t, contacts, result)
}

func TestContactService_ListContacts_UnknownDevice(t *testing.T) {
	fx := createTestContactService(t)

	ctx := context.Background()

	fx.deviceRepo.EXPECT().FindByExternalID(ctx, "missing").Return(nil, repository.ErrDeviceNotFound)

	result, err := fx.service.ListContacts(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, result)
}
