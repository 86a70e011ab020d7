package handler

import (
	"net/http"
	"time"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
}

// InvitationHandler handles invitation codes and their redemption
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
}

// NewInvitationHandler is the constructor for InvitationHandler
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{invitationUC: params.InvitationUC}
}

// IssueInvitationRequest represents the request body for rotating an owner's code
type IssueInvitationRequest struct {
	OwnerDeviceID string `json:"ownerDeviceId" validate:"required,max=255"`
}

// InvitationResponse is the wire form of an invitation
type InvitationResponse struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RedeemInvitationRequest represents the request body for confirming a code
type RedeemInvitationRequest struct {
	Code               string `json:"code" validate:"required,max=64"`
	SubscriberDeviceID string `json:"subscriberDeviceId" validate:"required,max=255"`
}

// RedeemInvitationQRRequest represents the request body for confirming scanned QR content
type RedeemInvitationQRRequest struct {
	QRData             string `json:"qrData" validate:"required,max=2048"`
	SubscriberDeviceID string `json:"subscriberDeviceId" validate:"required,max=255"`
}

// RedeemInvitationResponse carries the owner the subscriber is now following
type RedeemInvitationResponse struct {
	OwnerDeviceID string `json:"ownerDeviceId"`
}

// IssueInvitation handles rotating the owner's invitation code
func (h *InvitationHandler) IssueInvitation(c echo.Context) error {
	var req IssueInvitationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	invitation, err := h.invitationUC.IssueInvitation(c.Request().Context(), req.OwnerDeviceID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, InvitationResponse{
		Code:      invitation.Code,
		ExpiresAt: invitation.ExpiresAt,
	})
}

// GetInvitation handles retrieving the owner's current code
func (h *InvitationHandler) GetInvitation(c echo.Context) error {
	invitation, err := h.invitationUC.GetInvitation(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, InvitationResponse{
		Code:      invitation.Code,
		ExpiresAt: invitation.ExpiresAt,
	})
}

// GetInvitationQR handles rendering the owner's current code as a PNG QR code
func (h *InvitationHandler) GetInvitationQR(c echo.Context) error {
	png, err := h.invitationUC.GenerateInvitationQR(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

// RedeemInvitation handles subscribing to the owner of a code
func (h *InvitationHandler) RedeemInvitation(c echo.Context) error {
	var req RedeemInvitationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	owner, err := h.invitationUC.RedeemInvitation(c.Request().Context(), req.Code, req.SubscriberDeviceID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, RedeemInvitationResponse{OwnerDeviceID: owner})
}

// RedeemInvitationQR handles subscribing through scanned QR content
func (h *InvitationHandler) RedeemInvitationQR(c echo.Context) error {
	var req RedeemInvitationQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	owner, err := h.invitationUC.RedeemInvitationQR(c.Request().Context(), req.QRData, req.SubscriberDeviceID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, RedeemInvitationResponse{OwnerDeviceID: owner})
}
