package handler

import (
	"net/http"
	"time"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
}

// AlertHandler handles safe zone crossing alerts
type AlertHandler struct {
	alertUC usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{alertUC: params.AlertUC}
}

// CreateAlertRequest represents the request body for reporting a zone crossing
type CreateAlertRequest struct {
	DeviceID  string    `json:"deviceId" validate:"required,max=255"`
	Type      string    `json:"type" validate:"required,max=32"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Latitude  *float64  `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude *float64  `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// AlertResponse is the wire form of an alert
type AlertResponse struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// CreateAlert handles storing an alert and notifying subscribers
func (h *AlertHandler) CreateAlert(c echo.Context) error {
	var req CreateAlertRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.alertUC.CreateAlert(c.Request().Context(), &usecase.CreateAlertInput{
		DeviceID:  req.DeviceID,
		Type:      req.Type,
		Timestamp: req.Timestamp,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// ListAlerts handles listing alerts newest first
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	limit, err := queryLimit(c)
	if err != nil {
		return err
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), c.Param("deviceId"), limit)
	if err != nil {
		return err
	}

	resp := make([]AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		resp = append(resp, AlertResponse{
			Type:      alert.Type,
			Timestamp: alert.Timestamp,
			Latitude:  alert.Latitude,
			Longitude: alert.Longitude,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}
