package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"seguridad/internal/domain/entity"
	"seguridad/internal/domain/repository"
	"seguridad/internal/infra/persistence/migration"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB migrates and truncates the integration database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	databaseURL := testDatabaseURL(t)

	runner, err := migration.NewRunner(databaseURL, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, runner.Up())
	require.NoError(t, runner.Close())

	db, err := gorm.Open(gormpostgres.Open(databaseURL), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`TRUNCATE devices CASCADE`).Error)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestIntegration_DeviceEnsureAndCascade(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	devices := NewDeviceRepository(db)

	created, err := devices.Ensure(ctx, "dev-1", "")
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPlatform, created.Platform)

	refreshed, err := devices.Ensure(ctx, "dev-1", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, refreshed.ID)
	assert.Equal(t, entity.DefaultPlatform, refreshed.Platform)
	assert.False(t, refreshed.LastSeenAt.Before(created.LastSeenAt))

	changed, err := devices.Ensure(ctx, "dev-1", "android")
	require.NoError(t, err)
	assert.Equal(t, "android", changed.Platform)

	require.NoError(t, NewLocationRepository(db).Create(ctx, &entity.LocationEvent{
		DeviceID: created.ID, Latitude: 1, Longitude: 2, Timestamp: time.Now().UTC(),
	}))

	require.NoError(t, devices.DeleteByExternalID(ctx, "dev-1"))
	assert.ErrorIs(t, devices.DeleteByExternalID(ctx, "dev-1"), repository.ErrDeviceNotFound)

	_, err = NewLocationRepository(db).FindLatestByDevice(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestIntegration_LocationOrdering(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	device, err := NewDeviceRepository(db).Ensure(ctx, "dev-1", "ios")
	require.NoError(t, err)

	locations := NewLocationRepository(db)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	// Inserted out of order; reads follow the client timestamp.
	for _, offset := range []time.Duration{2 * time.Minute, 0, time.Minute} {
		require.NoError(t, locations.Create(ctx, &entity.LocationEvent{
			DeviceID: device.ID, Latitude: 40, Longitude: -3, Timestamp: base.Add(offset),
		}))
	}

	latest, err := locations.FindLatestByDevice(ctx, device.ID)
	require.NoError(t, err)
	assert.True(t, latest.Timestamp.Equal(base.Add(2*time.Minute)))

	history, err := locations.FindHistoryByDevice(ctx, device.ID, 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].Timestamp.Equal(base.Add(2*time.Minute)))
	assert.True(t, history[1].Timestamp.Equal(base.Add(time.Minute)))
}

func TestIntegration_UpsertsKeepOneRowPerKey(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	device, err := NewDeviceRepository(db).Ensure(ctx, "dev-1", "ios")
	require.NoError(t, err)

	zones := NewSafeZoneRepository(db)
	require.NoError(t, zones.Upsert(ctx, &entity.SafeZone{DeviceID: device.ID, Name: "Casa", Latitude: 1, Longitude: 1, RadiusMeters: 100, IsActive: true}))
	require.NoError(t, zones.Upsert(ctx, &entity.SafeZone{DeviceID: device.ID, Name: "Casa", Latitude: 2, Longitude: 2, RadiusMeters: 250, IsActive: false}))

	stored, err := zones.FindByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 250.0, stored[0].RadiusMeters)
	assert.False(t, stored[0].IsActive)

	contacts := NewContactRepository(db)
	require.NoError(t, contacts.Upsert(ctx, &entity.Contact{DeviceID: device.ID, Name: "Ana", Phone: "+1"}))
	require.NoError(t, contacts.Upsert(ctx, &entity.Contact{DeviceID: device.ID, Name: "Ana María", Phone: "+1"}))

	storedContacts, err := contacts.FindByDevice(ctx, device.ID)
	require.NoError(t, err)
	require.Len(t, storedContacts, 1)
	assert.Equal(t, "Ana María", storedContacts[0].Name)
}

func TestIntegration_TokenRepointAndSubscriberTokens(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	devices := NewDeviceRepository(db)

	owner, err := devices.Ensure(ctx, "owner", "ios")
	require.NoError(t, err)
	first, err := devices.Ensure(ctx, "sub-1", "ios")
	require.NoError(t, err)
	second, err := devices.Ensure(ctx, "sub-2", "ios")
	require.NoError(t, err)

	tokens := NewDeviceTokenRepository(db)
	require.NoError(t, tokens.Upsert(ctx, &entity.DeviceToken{DeviceID: first.ID, Token: "tok", Environment: entity.PushEnvironmentSandbox}))
	require.NoError(t, tokens.Upsert(ctx, &entity.DeviceToken{DeviceID: second.ID, Token: "tok", Environment: entity.PushEnvironmentProduction}))

	firstTokens, err := tokens.FindByDevice(ctx, first.ID)
	require.NoError(t, err)
	assert.Empty(t, firstTokens)

	subscriptions := NewSubscriptionRepository(db)
	require.NoError(t, subscriptions.Create(ctx, &entity.Subscription{OwnerDeviceID: owner.ID, SubscriberDeviceID: second.ID}))

	fanOut, err := subscriptions.FindSubscriberTokens(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, fanOut, 1)
	assert.Equal(t, "tok", fanOut[0].Token)
	assert.Equal(t, entity.PushEnvironmentProduction, fanOut[0].Environment)

	err = subscriptions.Create(ctx, &entity.Subscription{OwnerDeviceID: owner.ID, SubscriberDeviceID: second.ID})
	assert.ErrorIs(t, err, repository.ErrDuplicateSubscription)

	require.NoError(t, subscriptions.DeleteByPair(ctx, owner.ID, second.ID))
	assert.ErrorIs(t, subscriptions.DeleteByPair(ctx, owner.ID, second.ID), repository.ErrSubscriptionNotFound)
}

func TestIntegration_InvitationRotation(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	devices := NewDeviceRepository(db)

	owner, err := devices.Ensure(ctx, "owner", "ios")
	require.NoError(t, err)
	other, err := devices.Ensure(ctx, "other", "ios")
	require.NoError(t, err)

	invitations := NewInvitationRepository(db)
	expires := time.Now().UTC().Add(time.Hour)
	require.NoError(t, invitations.Upsert(ctx, &entity.Invitation{OwnerDeviceID: owner.ID, Code: "111111", ExpiresAt: expires}))
	require.NoError(t, invitations.Upsert(ctx, &entity.Invitation{OwnerDeviceID: owner.ID, Code: "222222", ExpiresAt: expires}))

	exists, err := invitations.CodeExists(ctx, "111111")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = invitations.FindByCode(ctx, "111111")
	assert.ErrorIs(t, err, repository.ErrInvitationNotFound)

	found, err := invitations.FindByCode(ctx, "222222")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.OwnerDeviceID)

	err = invitations.Upsert(ctx, &entity.Invitation{OwnerDeviceID: other.ID, Code: "222222", ExpiresAt: expires})
	assert.True(t, errors.Is(err, repository.ErrDuplicateInvitationCode))
}

func TestIntegration_TransactionRollsBack(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if _, err := factory.NewDeviceRepository().Ensure(ctx, "dev-tx", "ios"); err != nil {
			return err
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewDeviceRepository(db).FindByExternalID(ctx, "dev-tx")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
