package handler

import (
	"log/slog"
	"net/http"

	"virtualcheck/internal/delivery/api/response"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RelationHandlerParams holds dependencies for RelationHandler, injected by Fx.
type RelationHandlerParams struct {
	fx.In

	RelationUC usecase.RelationUsecase
	QRCodeSvc  service.QRCodeService
	Logger     *slog.Logger
}

// RelationHandler serves the admin pages for agency/store relation links.
type RelationHandler struct {
	relationUC usecase.RelationUsecase
	qrCodeSvc  service.QRCodeService
	logger     *slog.Logger
}

// NewRelationHandler is the constructor for RelationHandler
func NewRelationHandler(params RelationHandlerParams) *RelationHandler {
	return &RelationHandler{
		relationUC: params.RelationUC,
		qrCodeSvc:  params.QRCodeSvc,
		logger:     params.Logger,
	}
}

// CreateRelationRequest links one agency with one store.
type CreateRelationRequest struct {
	AgencyID string `form:"agency"`
	StoreID  string `form:"store"`
}

func (h *RelationHandler) newRelationView(link *entity.RelationLink) RelationView {
	return RelationView{
		ID:         link.ID,
		Hash:       link.Hash,
		AgencyID:   link.AgencyID,
		AgencyName: link.AgencyName(),
		StoreID:    link.StoreID,
		StoreName:  link.StoreName(),
		URL:        h.qrCodeSvc.RelationURL(link.Hash),
		Created:    link.CreatedAt,
	}
}

// List returns one page of relation links with their public URLs.
func (h *RelationHandler) List(c echo.Context) error {
	query := listQuery(c)

	page, err := h.relationUC.List(c.Request().Context(), deliverycontext.GetSession(c), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPageView(page, query.Search, h.newRelationView))
}

// Create links an agency and a store under a derived hash.
func (h *RelationHandler) Create(c echo.Context) error {
	var req CreateRelationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid relation form", nil)
	}

	link, err := h.relationUC.Create(c.Request().Context(), deliverycontext.GetSession(c), req.AgencyID, req.StoreID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, h.newRelationView(link))
}

// Delete removes a relation link. Contacts it produced are kept.
func (h *RelationHandler) Delete(c echo.Context) error {
	id := c.FormValue("id")

	if err := h.relationUC.Delete(c.Request().Context(), deliverycontext.GetSession(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"success": true, "id": id})
}

// QRCode renders the public page URL of a relation link as a PNG.
func (h *RelationHandler) QRCode(c echo.Context) error {
	png, err := h.relationUC.QRCode(c.Request().Context(), deliverycontext.GetSession(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, png)
}
