package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"virtualcheck/internal/delivery/api/response"
	deliverycontext "virtualcheck/internal/delivery/context"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the admin contact list and its workflow toggles.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// UpdateStatusRequest toggles one workflow flag on a contact.
type UpdateStatusRequest struct {
	ContactID string `form:"contactId"`
	Field     string `form:"field"`
	Value     string `form:"value"`
}

// List returns one page of contacts, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	query := listQuery(c)

	page, err := h.contactUC.List(c.Request().Context(), deliverycontext.GetSession(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, query.Search, newContactView))
}

// UpdateStatus sets acceptance, virtual_check_active, email_sent or redeemed.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid status form", nil)
	}

	value, err := strconv.ParseBool(req.Value)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrMissingFields.WithDetails(map[string][]string{
			"fields": {"value"},
		}))
	}

	if err := h.contactUC.UpdateStatus(c.Request().Context(), deliverycontext.GetSession(c), req.ContactID, req.Field, value); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"success": true,
		"field":   req.Field,
		"value":   value,
	})
}
