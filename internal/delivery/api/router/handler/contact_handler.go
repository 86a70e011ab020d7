package handler

import (
	"net/http"

	"seguridad/internal/delivery/api/response"
	"seguridad/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

// ContactHandler handles emergency contacts
type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contactUC: params.ContactUC}
}

// UpsertContactRequest represents the request body for saving a contact
type UpsertContactRequest struct {
	DeviceID string `json:"deviceId" validate:"required,max=255"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=64"`
}

// ContactResponse is the wire form of a contact
type ContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpsertContact handles saving a contact
func (h *ContactHandler) UpsertContact(c echo.Context) error {
	var req UpsertContactRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	_, err := h.contactUC.UpsertContact(c.Request().Context(), &usecase.UpsertContactInput{
		DeviceID: req.DeviceID,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return response.OK(c)
}

// ListContacts handles listing the contacts of a device
func (h *ContactHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactUC.ListContacts(c.Request().Context(), c.Param("deviceId"))
	if err != nil {
		return err
	}

	resp := make([]ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		resp = append(resp, ContactResponse{Name: contact.Name, Phone: contact.Phone})
	}

	return response.Success(c, http.StatusOK, resp)
}
