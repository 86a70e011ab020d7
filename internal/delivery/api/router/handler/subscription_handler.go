package handler

import (
	"net/http"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/domain/entity"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
}

// SubscriptionHandler handles the owner to subscriber graph
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionUC: params.SubscriptionUC}
}

// SubscriptionRequest identifies a subscription edge
type SubscriptionRequest struct {
	OwnerDeviceID      string `json:"ownerDeviceId" validate:"required,max=255"`
	SubscriberDeviceID string `json:"subscriberDeviceId" validate:"required,max=255"`
}

// Subscribe handles creating an edge owner -> subscriber
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.subscriptionUC.Subscribe(c.Request().Context(), req.OwnerDeviceID, req.SubscriberDeviceID); err != nil {
		return err
	}

	return response.OK(c)
}

// Unsubscribe handles removing an edge owner -> subscriber
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	var req SubscriptionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), req.OwnerDeviceID, req.SubscriberDeviceID); err != nil {
		return err
	}

	return response.OK(c)
}

// ListSubscribers handles listing the device ids subscribed to an owner
func (h *SubscriptionHandler) ListSubscribers(c echo.Context) error {
	devices, err := h.subscriptionUC.ListSubscribers(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, externalIDs(devices))
}

// ListOwners handles listing the owners a device is subscribed to
func (h *SubscriptionHandler) ListOwners(c echo.Context) error {
	devices, err := h.subscriptionUC.ListSubscriptions(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, externalIDs(devices))
}

func externalIDs(devices []*entity.Device) []string {
	ids := make([]string, 0, len(devices))
	for _, device := range devices {
		ids = append(ids, device.ExternalID)
	}

	return ids
}
