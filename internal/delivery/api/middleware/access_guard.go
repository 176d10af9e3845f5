package middleware

import (
	"net/http"
	"strings"

	deliverycontext "virtualcheck/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const (
	adminPath = "/admin"
	loginPath = "/admin/login"
)

// AccessGuard keeps anonymous visitors out of the admin area.
type AccessGuard struct{}

// NewAccessGuard is the constructor for AccessGuard.
func NewAccessGuard() *AccessGuard {
	return &AccessGuard{}
}

// Protect sends requests without a principal to the login page with a 303.
// The login entry point itself is always allowed through.
// It must be used AFTER the session middleware.
func (g *AccessGuard) Protect(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if strings.HasSuffix(c.Path(), loginPath) {
			return next(c)
		}

		if !deliverycontext.GetSession(c).IsAuthenticated() {
			return c.Redirect(http.StatusSeeOther, LoginPath(c))
		}

		return next(c)
	}
}

// LoginPath returns the login page path, keeping the request's locale prefix.
func LoginPath(c echo.Context) string {
	return localePrefix(c) + loginPath
}

// AdminPath returns the admin landing path, keeping the request's locale prefix.
func AdminPath(c echo.Context) string {
	return localePrefix(c) + adminPath
}

func localePrefix(c echo.Context) string {
	if lang := c.Param("lang"); lang != "" {
		return "/" + lang
	}

	return ""
}
