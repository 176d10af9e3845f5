package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"virtualcheck/internal/delivery/api/response"
	deliverycontext "virtualcheck/internal/delivery/context"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/errors"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/text/language"
)

// RedemptionHandlerParams holds dependencies for RedemptionHandler, injected by Fx.
type RedemptionHandlerParams struct {
	fx.In

	RedemptionUC usecase.RedemptionUsecase
	Logger       *slog.Logger
}

// RedemptionHandler serves the public virtual check page and form.
type RedemptionHandler struct {
	redemptionUC usecase.RedemptionUsecase
	logger       *slog.Logger
}

// NewRedemptionHandler is the constructor for RedemptionHandler
func NewRedemptionHandler(params RedemptionHandlerParams) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionUC: params.RedemptionUC,
		logger:       params.Logger,
	}
}

// ContactRequest is the public contact form. Agency and store ids are not part
// of it; they always come from the hash.
type ContactRequest struct {
	Name     string `form:"name" json:"name" validate:"required"`
	LastName string `form:"last_name" json:"last_name" validate:"required"`
	Phone    string `form:"phone" json:"phone" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required,email"`
}

// trim normalizes the fields. Email is lowercased so the one contact per
// email check is case insensitive.
func (r *ContactRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// VirtualCheckView is the resolved state of a virtual check page.
type VirtualCheckView struct {
	Valid      bool   `json:"valid"`
	Hash       string `json:"hash,omitempty"`
	AgencyID   string `json:"agency_id,omitempty"`
	StoreID    string `json:"store_id,omitempty"`
	AgencyName string `json:"agency_name,omitempty"`
	StoreName  string `json:"store_name,omitempty"`
	Locale     string `json:"locale,omitempty"`
}

func localeOf(c echo.Context) string {
	tag := deliverycontext.GetLocale(c)
	if tag == language.Und {
		return ""
	}

	return tag.String()
}

// Show resolves the hash. Malformed and unused hashes get the same invalid view.
func (h *RedemptionHandler) Show(c echo.Context) error {
	session := deliverycontext.GetSession(c)

	link, found, err := h.redemptionUC.Resolve(c.Request().Context(), session, c.Param("hash"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if !found {
		return response.Success(c, http.StatusOK, VirtualCheckView{Valid: false})
	}

	return response.Success(c, http.StatusOK, VirtualCheckView{
		Valid:      true,
		Hash:       link.Hash,
		AgencyID:   link.AgencyID,
		StoreID:    link.StoreID,
		AgencyName: link.AgencyName(),
		StoreName:  link.StoreName(),
		Locale:     localeOf(c),
	})
}

// Submit validates the contact form and registers it under the hash's relation link.
func (h *RedemptionHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid contact form", nil)
	}
	req.trim()

	if err := c.Validate(&req); err != nil {
		var validationErr *domainerrors.ValidationError
		if errors.As(err, &validationErr) {
			return response.HandleAppError(c, validationErr.WithValues(req))
		}

		return errors.WithStack(err)
	}

	input := &usecase.ContactInput{
		Name:     req.Name,
		LastName: req.LastName,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	session := deliverycontext.GetSession(c)
	if _, err := h.redemptionUC.Submit(c.Request().Context(), session, c.Param("hash"), input); err != nil {
		if errors.Is(err, domainerrors.ErrInvalidHash) {
			return response.HandleAppError(c, domainerrors.ErrInvalidHash.WithDetails(map[string]any{"values": req}))
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]bool{"success": true})
}
