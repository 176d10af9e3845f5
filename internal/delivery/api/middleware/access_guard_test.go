package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGuardedEcho(session entity.Session) *echo.Echo {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSession(c, session)

			return next(c)
		}
	})

	guard := NewAccessGuard()
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "handled") }

	for _, site := range []*echo.Group{e.Group(""), e.Group("/:lang")} {
		admin := site.Group("/admin", guard.Protect)
		admin.GET("", ok)
		admin.GET("/login", ok)
		admin.POST("/login", ok)
		admin.GET("/agencies", ok)
	}

	return e
}

func TestAccessGuard_Protect(t *testing.T) {
	authenticated := entity.NewSession("tok", &entity.Principal{ID: "u1"})
	credentialOnly := entity.NewSession("tok", nil)

	tests := []struct {
		name         string
		session      entity.Session
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "anonymous admin page redirects to login",
			session:      entity.AnonymousSession,
			method:       http.MethodGet,
			path:         "/admin",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin/login",
		},
		{
			name:         "anonymous nested admin page redirects to login",
			session:      entity.AnonymousSession,
			method:       http.MethodGet,
			path:         "/admin/agencies",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin/login",
		},
		{
			name:         "locale prefix is kept",
			session:      entity.AnonymousSession,
			method:       http.MethodGet,
			path:         "/en/admin/agencies",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/en/admin/login",
		},
		{
			name:         "credential without principal is not enough",
			session:      credentialOnly,
			method:       http.MethodGet,
			path:         "/admin",
			wantStatus:   http.StatusSeeOther,
			wantLocation: "/admin/login",
		},
		{
			name:       "login page is always allowed",
			session:    entity.AnonymousSession,
			method:     http.MethodGet,
			path:       "/admin/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "login post is always allowed",
			session:    entity.AnonymousSession,
			method:     http.MethodPost,
			path:       "/es/admin/login",
			wantStatus: http.StatusOK,
		},
		{
			name:       "authenticated session passes",
			session:    authenticated,
			method:     http.MethodGet,
			path:       "/admin/agencies",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newGuardedEcho(tt.session)
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
				assert.NotContains(t, rec.Body.String(), "handled")
			}
		})
	}
}
