package handler

import (
	"log/slog"
	"net/http"
	"time"

	"seguridad/internal/delivery/api/response"
	deliverycontext "seguridad/internal/delivery/context"
	"seguridad/internal/domain/entity"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler holds dependencies for device-related handlers
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// RegisterDeviceRequest represents the request body for registering a device.
// An omitted platform registers as ios and overwrites the stored one.
type RegisterDeviceRequest struct {
	DeviceID string `json:"deviceId" validate:"required,max=255"`
	Platform string `json:"platform" validate:"omitempty,max=32"`
}

// RegisterDeviceResponse echoes the registered device id
type RegisterDeviceResponse struct {
	DeviceID string `json:"deviceId"`
}

// DeviceResponse is the wire form of a device
type DeviceResponse struct {
	DeviceID   string    `json:"deviceId"`
	Platform   string    `json:"platform"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

func toDeviceResponse(device *entity.Device) DeviceResponse {
	return DeviceResponse{
		DeviceID:   device.ExternalID,
		Platform:   device.Platform,
		CreatedAt:  device.CreatedAt,
		LastSeenAt: device.LastSeenAt,
	}
}

// RegisterDevice handles device registration
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	platform := req.Platform
	if platform == "" {
		platform = entity.DefaultPlatform
	}

	device, err := h.deviceUC.RegisterDevice(c.Request().Context(), req.DeviceID, platform)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, RegisterDeviceResponse{DeviceID: device.ExternalID})
}

// GetDevice handles retrieving a device
func (h *DeviceHandler) GetDevice(c echo.Context) error {
	device, err := h.deviceUC.GetDevice(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toDeviceResponse(device))
}

// DeleteDevice handles deleting a device and everything it owns
func (h *DeviceHandler) DeleteDevice(c echo.Context) error {
	ctx := c.Request().Context()
	deviceID := c.Param("deviceId")
	if err := h.deviceUC.DeleteDevice(ctx, deviceID); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Device deleted on request",
		slog.String("device_id", deviceID),
		slog.String("remote_ip", c.RealIP()),
	)

	return response.OK(c)
}
