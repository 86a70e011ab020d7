package handler

import (
	"net/http"

	"seguridad/internal/delivery/api/response"
	domainerrors "seguridad/internal/domain/errors"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SafeZoneHandlerParams holds dependencies for SafeZoneHandler, injected by Fx.
type SafeZoneHandlerParams struct {
	fx.In

	SafeZoneUC usecase.SafeZoneUsecase
	LocationUC usecase.LocationUsecase
}

// SafeZoneHandler handles safe zone definitions
type SafeZoneHandler struct {
	safeZoneUC usecase.SafeZoneUsecase
	locationUC usecase.LocationUsecase
}

// NewSafeZoneHandler is the constructor for SafeZoneHandler
func NewSafeZoneHandler(params SafeZoneHandlerParams) *SafeZoneHandler {
	return &SafeZoneHandler{
		safeZoneUC: params.SafeZoneUC,
		locationUC: params.LocationUC,
	}
}

// UpsertSafeZoneRequest represents the request body for saving a safe zone
type UpsertSafeZoneRequest struct {
	DeviceID     string   `json:"deviceId" validate:"required,max=255"`
	Name         string   `json:"name" validate:"required,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	RadiusMeters *float64 `json:"radiusMeters" validate:"required,gt=0"`
	IsActive     *bool    `json:"isActive" validate:"required"`
}

// SafeZoneResponse is the wire form of a safe zone
type SafeZoneResponse struct {
	Name         string  `json:"name"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters float64 `json:"radiusMeters"`
	IsActive     bool    `json:"isActive"`
}

// UpsertSafeZone handles saving a safe zone
func (h *SafeZoneHandler) UpsertSafeZone(c echo.Context) error {
	var req UpsertSafeZoneRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.safeZoneUC.UpsertSafeZone(c.Request().Context(), &usecase.UpsertSafeZoneInput{
		DeviceID:     req.DeviceID,
		Name:         req.Name,
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: *req.RadiusMeters,
		IsActive:     *req.IsActive,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// ListSafeZones handles listing the zones of a device
func (h *SafeZoneHandler) ListSafeZones(c echo.Context) error {
	zones, err := h.safeZoneUC.ListSafeZones(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	resp := make([]SafeZoneResponse, 0, len(zones))
	for _, zone := range zones {
		resp = append(resp, SafeZoneResponse{
			Name:         zone.Name,
			Latitude:     zone.Latitude,
			Longitude:    zone.Longitude,
			RadiusMeters: zone.RadiusMeters,
			IsActive:     zone.IsActive,
		})
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetSafeZonesGeoJSON handles rendering zones as GeoJSON, annotated against the latest location
func (h *SafeZoneHandler) GetSafeZonesGeoJSON(c echo.Context) error {
	ctx := c.Request().Context()
	deviceID := c.Param("deviceId")

	zones, err := h.safeZoneUC.ListSafeZones(ctx, deviceID)
	if err != nil {
		return err
	}

	var position *orb.Point
	latest, err := h.locationUC.GetLatestLocation(ctx, deviceID)
	switch {
	case err == nil:
		point := latest.Point()
		position = &point
	case !errors.Is(err, domainerrors.ErrLocationNotFound):
		return err
	}

	return writeGeoJSON(c, safeZonesCollection(zones, position))
}
