package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seguridad/config"
	"seguridad/internal/delivery/api/response"
	"seguridad/internal/delivery/api/router"
	"seguridad/internal/delivery/api/router/handler"
	"seguridad/internal/domain/entity"
	domainerrors "seguridad/internal/domain/errors"
	mockusecase "seguridad/internal/mocks/usecase"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var anyCtx = mock.Anything

func intPtr(v int) *int { return &v }

type testServer struct {
	echo           *echo.Echo
	deviceUC       *mockusecase.MockDeviceUsecase
	deviceTokenUC  *mockusecase.MockDeviceTokenUsecase
	locationUC     *mockusecase.MockLocationUsecase
	safeZoneUC     *mockusecase.MockSafeZoneUsecase
	contactUC      *mockusecase.MockContactUsecase
	alertUC        *mockusecase.MockAlertUsecase
	subscriptionUC *mockusecase.MockSubscriptionUsecase
	invitationUC   *mockusecase.MockInvitationUsecase
}

func testServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.RateLimit.Redeem.RatePerSecond = 5
	cfg.RateLimit.Redeem.Burst = 10
	cfg.RateLimit.Redeem.ExpiresIn = time.Minute
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	if cfg == nil {
		cfg = testServerConfig()
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ts := &testServer{
		deviceUC:       mockusecase.NewMockDeviceUsecase(t),
		deviceTokenUC:  mockusecase.NewMockDeviceTokenUsecase(t),
		locationUC:     mockusecase.NewMockLocationUsecase(t),
		safeZoneUC:     mockusecase.NewMockSafeZoneUsecase(t),
		contactUC:      mockusecase.NewMockContactUsecase(t),
		alertUC:        mockusecase.NewMockAlertUsecase(t),
		subscriptionUC: mockusecase.NewMockSubscriptionUsecase(t),
		invitationUC:   mockusecase.NewMockInvitationUsecase(t),
	}

	ts.echo = NewEcho(cfg, logger, router.RouterParams{
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: ts.deviceUC, Logger: logger}),
		DeviceTokenHandler:  handler.NewDeviceTokenHandler(handler.DeviceTokenHandlerParams{DeviceTokenUC: ts.deviceTokenUC}),
		LocationHandler:     handler.NewLocationHandler(handler.LocationHandlerParams{LocationUC: ts.locationUC}),
		SafeZoneHandler:     handler.NewSafeZoneHandler(handler.SafeZoneHandlerParams{SafeZoneUC: ts.safeZoneUC, LocationUC: ts.locationUC}),
		ContactHandler:      handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: ts.contactUC}),
		AlertHandler:        handler.NewAlertHandler(handler.AlertHandlerParams{AlertUC: ts.alertUC}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: ts.subscriptionUC}),
		InvitationHandler:   handler.NewInvitationHandler(handler.InvitationHandlerParams{InvitationUC: ts.invitationUC}),
		Config:              cfg,
	})

	return ts
}

func (ts *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, nil)

	rec := ts.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterDevice(t *testing.T) {
	t.Run("registers and echoes the device id", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.deviceUC.EXPECT().RegisterDevice(anyCtx, "dev-1", "android").
			Return(&entity.Device{ExternalID: "dev-1", Platform: "android"}, nil).Once()

		rec := ts.do(http.MethodPost, "/devices/register", `{"deviceId":"dev-1","platform":"android"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"deviceId":"dev-1"}`, rec.Body.String())
	})

	t.Run("omitted platform registers as ios", func(t *testing.T) {
		ts := newTestServer(t, nil)
		ts.deviceUC.EXPECT().RegisterDevice(anyCtx, "dev-1", entity.DefaultPlatform).
			Return(&entity.Device{ExternalID: "dev-1", Platform: entity.DefaultPlatform}, nil).Once()

		rec := ts.do(http.MethodPost, "/devices/register", `{"deviceId":"dev-1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing device id fails validation", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec := ts.do(http.MethodPost, "/devices/register", `{"platform":"ios"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Equal(t, "deviceId is required", body.Error.Details)
	})

	t.Run("malformed json is invalid input", func(t *testing.T) {
		ts := newTestServer(t, nil)

		rec := ts.do(http.MethodPost, "/devices/register", `{"deviceId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
	})
}

func TestGetAndDeleteDevice(t *testing.T) {
	ts := newTestServer(t, nil)
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	ts.deviceUC.EXPECT().GetDevice(anyCtx, "dev-1").
		Return(&entity.Device{ExternalID: "dev-1", Platform: "ios", CreatedAt: created, LastSeenAt: created}, nil).Once()
	ts.deviceUC.EXPECT().GetDevice(anyCtx, "ghost").
		Return(nil, errors.Wrap(domainerrors.ErrDeviceNotFound, "failed to find device")).Once()
	ts.deviceUC.EXPECT().DeleteDevice(anyCtx, "dev-1").Return(nil).Once()

	rec := ts.do(http.MethodGet, "/devices/dev-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deviceId":"dev-1","platform":"ios","createdAt":"2026-01-02T03:04:05Z","lastSeenAt":"2026-01-02T03:04:05Z"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/devices/ghost", nil)
	req.Header.Set("X-Request-Id", "req-42")
	rec = httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "DEVICE_NOT_FOUND", body.Error.Code)
	assert.Equal(t, "req-42", body.Meta.RequestID)

	rec = ts.do(http.MethodDelete, "/devices/dev-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnhandledErrorIsInternal(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.deviceUC.EXPECT().GetDevice(anyCtx, "dev-1").Return(nil, errors.New("connection reset")).Once()

	rec := ts.do(http.MethodGet, "/devices/dev-1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestDeviceTokens(t *testing.T) {
	ts := newTestServer(t, nil)
	seen := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ts.deviceTokenUC.EXPECT().RegisterToken(anyCtx, mock.MatchedBy(func(in *usecase.RegisterTokenInput) bool {
		return in.DeviceID == "dev-1" && in.Token == "abc123" && in.Environment == "production"
	})).Return(&entity.DeviceToken{Token: "abc123"}, nil).Once()
	ts.deviceTokenUC.EXPECT().ListTokens(anyCtx, "dev-1").Return([]*entity.DeviceToken{
		{Token: "abc123", Environment: entity.PushEnvironmentProduction, LastSeenAt: seen},
	}, nil).Once()
	ts.deviceTokenUC.EXPECT().DeleteToken(anyCtx, "zzz").
		Return(errors.Wrap(domainerrors.ErrDeviceTokenNotFound, "failed to delete token")).Once()

	rec := ts.do(http.MethodPost, "/device-tokens", `{"deviceId":"dev-1","token":"abc123","environment":"production"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/device-tokens/dev-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"token":"abc123","environment":"production","lastSeenAt":"2026-03-01T00:00:00Z"}]`, rec.Body.String())

	rec = ts.do(http.MethodDelete, "/device-tokens/zzz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_TOKEN_NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestContacts(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.contactUC.EXPECT().UpsertContact(anyCtx, mock.MatchedBy(func(in *usecase.UpsertContactInput) bool {
		return in.DeviceID == "dev-1" && in.Name == "Ana" && in.Phone == "+34600000000"
	})).Return(&entity.Contact{}, nil).Once()
	ts.contactUC.EXPECT().ListContacts(anyCtx, "dev-1").Return([]*entity.Contact{
		{Name: "Ana", Phone: "+34600000000"},
	}, nil).Once()

	rec := ts.do(http.MethodPost, "/contacts", `{"deviceId":"dev-1","name":"Ana","phone":"+34600000000"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(http.MethodGet, "/contacts/dev-1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"name":"Ana","phone":"+34600000000"}]`, rec.Body.String())

	rec = ts.do(http.MethodPost, "/contacts", `{"deviceId":"dev-1","name":"Ana"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "phone is required", decodeError(t, rec).Error.Details)
}
