package handler

import (
	"log/slog"
	"net/http"

	"virtualcheck/internal/delivery/api/response"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler serves the admin pages for agencies and stores. Both kinds
// share one set of handlers, bound per kind at routing time.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// BusinessRequest is the agency/store form, address fields included.
type BusinessRequest struct {
	ID             string `form:"id"`
	Name           string `form:"name"`
	Phone          string `form:"phone"`
	Email          string `form:"email"`
	Website        string `form:"website"`
	AddressID      string `form:"address_id"`
	AddressLine    string `form:"address_line"`
	AddressLine2   string `form:"address_line_2"`
	AddressCity    string `form:"address_city"`
	AddressZip     string `form:"address_zip"`
	AddressState   string `form:"address_state"`
	AddressCountry string `form:"address_country"`
}

func (r *BusinessRequest) toInput(kind entity.BusinessKind) *usecase.BusinessInput {
	return &usecase.BusinessInput{
		Kind:      kind,
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Website:   r.Website,
		AddressID: r.AddressID,
		Address: entity.Address{
			ID:      r.AddressID,
			Line:    r.AddressLine,
			Line2:   r.AddressLine2,
			City:    r.AddressCity,
			Zip:     r.AddressZip,
			State:   r.AddressState,
			Country: r.AddressCountry,
		},
	}
}

// List returns a handler listing businesses of the given kind.
func (h *BusinessHandler) List(kind entity.BusinessKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := listQuery(c)

		page, err := h.businessUC.List(c.Request().Context(), deliverycontext.GetSession(c), kind, query)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, newPageView(page, query.Search, newBusinessView))
	}
}

// Create returns a handler creating a business of the given kind.
func (h *BusinessHandler) Create(kind entity.BusinessKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req BusinessRequest
		if err := c.Bind(&req); err != nil {
			return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid form input", nil)
		}
		req.ID = ""

		business, err := h.businessUC.Create(c.Request().Context(), deliverycontext.GetSession(c), req.toInput(kind))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusCreated, newBusinessView(business))
	}
}

// Update returns a handler updating a business of the given kind.
func (h *BusinessHandler) Update(kind entity.BusinessKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req BusinessRequest
		if err := c.Bind(&req); err != nil {
			return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid form input", nil)
		}

		business, err := h.businessUC.Update(c.Request().Context(), deliverycontext.GetSession(c), req.toInput(kind))
		if err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, newBusinessView(business))
	}
}

// Delete returns a handler deleting a business of the given kind. Its address is kept.
func (h *BusinessHandler) Delete(kind entity.BusinessKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.FormValue("id")

		if err := h.businessUC.Delete(c.Request().Context(), deliverycontext.GetSession(c), kind, id); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.Success(c, http.StatusOK, map[string]any{"success": true, "id": id})
	}
}
