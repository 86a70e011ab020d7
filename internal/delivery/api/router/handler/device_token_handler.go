package handler

import (
	"net/http"
	"time"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceTokenHandlerParams holds dependencies for DeviceTokenHandler, injected by Fx.
type DeviceTokenHandlerParams struct {
	fx.In

	DeviceTokenUC usecase.DeviceTokenUsecase
}

// DeviceTokenHandler handles push token registration
type DeviceTokenHandler struct {
	deviceTokenUC usecase.DeviceTokenUsecase
}

// NewDeviceTokenHandler is the constructor for DeviceTokenHandler
func NewDeviceTokenHandler(params DeviceTokenHandlerParams) *DeviceTokenHandler {
	return &DeviceTokenHandler{deviceTokenUC: params.DeviceTokenUC}
}

// RegisterTokenRequest represents the request body for registering a push token
type RegisterTokenRequest struct {
	DeviceID    string `json:"deviceId" validate:"required,max=255"`
	Token       string `json:"token" validate:"required,max=512"`
	Environment string `json:"environment"`
}

// DeviceTokenResponse is the wire form of a push token
type DeviceTokenResponse struct {
	Token       string    `json:"token"`
	Environment string    `json:"environment"`
	LastSeenAt  time.Time `json:"lastSeenAt"`
}

// RegisterToken handles push token registration
func (h *DeviceTokenHandler) RegisterToken(c echo.Context) error {
	var req RegisterTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.deviceTokenUC.RegisterToken(c.Request().Context(), &usecase.RegisterTokenInput{
		DeviceID:    req.DeviceID,
		Token:       req.Token,
		Environment: req.Environment,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// ListTokens handles listing the push tokens of a device
func (h *DeviceTokenHandler) ListTokens(c echo.Context) error {
	tokens, err := h.deviceTokenUC.ListTokens(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	resp := make([]DeviceTokenResponse, 0, len(tokens))
	for _, token := range tokens {
		resp = append(resp, DeviceTokenResponse{
			Token:       token.Token,
			Environment: string(token.Environment),
			LastSeenAt:  token.LastSeenAt,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// DeleteToken handles removing a push token
func (h *DeviceTokenHandler) DeleteToken(c echo.Context) error {
	if err := h.deviceTokenUC.DeleteToken(c.Request().Context(), c.Param("token")); err != nil {
		return err
	}

	return response.OK(c)
}
