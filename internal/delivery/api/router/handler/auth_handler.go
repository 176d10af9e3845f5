package handler

import (
	"log/slog"
	"net/http"

	"virtualcheck/internal/delivery/api/middleware"
	"virtualcheck/internal/delivery/api/response"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves the admin login and logout entry points.
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest is the admin login form.
type LoginRequest struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

// LoginPage sends signed-in admins to the admin landing page.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if deliverycontext.GetSession(c).IsAuthenticated() {
		return response.SeeOther(c, middleware.AdminPath(c))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"authenticated": false,
		"action":        middleware.LoginPath(c),
	})
}

// Login exchanges the submitted credentials for a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequestWithDetails(c, "INVALID_INPUT", "Invalid login form", nil)
	}

	session, err := h.sessionUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.SetSession(c, session)

	return response.SeeOther(c, middleware.AdminPath(c))
}

// Logout drops the session; the session middleware expires both cookies.
func (h *AuthHandler) Logout(c echo.Context) error {
	deliverycontext.SetSession(c, entity.AnonymousSession)

	return response.SeeOther(c, middleware.LoginPath(c))
}
