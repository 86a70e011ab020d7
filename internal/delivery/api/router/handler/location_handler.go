package handler

import (
	"net/http"
	"time"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/domain/entity"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler handles the location log
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{locationUC: params.LocationUC}
}

// RecordLocationRequest represents the request body for reporting a location sample
type RecordLocationRequest struct {
	DeviceID  string    `json:"deviceId" validate:"required,max=255"`
	Latitude  *float64  `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64  `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy  *float64  `json:"accuracy" validate:"required,gte=0"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// LocationResponse is the wire form of a location sample
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  float64   `json:"accuracy"`
	Timestamp time.Time `json:"timestamp"`
}

func toLocationResponse(event *entity.LocationEvent) LocationResponse {
	return LocationResponse{
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Accuracy:  event.Accuracy,
		Timestamp: event.Timestamp,
	}
}

// RecordLocation handles appending a location sample
func (h *LocationHandler) RecordLocation(c echo.Context) error {
	var req RecordLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.locationUC.RecordLocation(c.Request().Context(), &usecase.RecordLocationInput{
		DeviceID:  req.DeviceID,
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Accuracy:  *req.Accuracy,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// GetLatestLocation handles retrieving the newest sample of a device
func (h *LocationHandler) GetLatestLocation(c echo.Context) error {
	event, err := h.locationUC.GetLatestLocation(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toLocationResponse(event))
}

// GetLocationHistory handles listing samples newest first
func (h *LocationHandler) GetLocationHistory(c echo.Context) error {
	events, err := h.history(c)
	if err != nil {
		return err
	}

	resp := make([]LocationResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, toLocationResponse(event))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetLocationHistoryGeoJSON handles rendering the history as a GeoJSON FeatureCollection
func (h *LocationHandler) GetLocationHistoryGeoJSON(c echo.Context) error {
	events, err := h.history(c)
	if err != nil {
		return err
	}

	return writeGeoJSON(c, locationTrackCollection(events))
}

func (h *LocationHandler) history(c echo.Context) ([]*entity.LocationEvent, error) {
	limit, err := queryLimit(c)
	if err != nil {
		return nil, err
	}

	return h.locationUC.GetLocationHistory(c.Request().Context(), c.Param("deviceId"), limit)
}
