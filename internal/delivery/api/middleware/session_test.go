package middleware

import (
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"virtualcheck/config"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/errors"
	mockUsecase "virtualcheck/internal/mocks/usecase"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSessionConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{
			AuthCookie: "pb_auth",
			UserCookie: "pb_user",
			MaxAge:     7 * 24 * time.Hour,
		},
	}
}

func newTestSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewSessionMiddleware(SessionMiddlewareParams{
		SessionUC: sessionUC,
		Config:    testSessionConfig(),
		Logger:    slog.Default(),
	}), sessionUC
}

func cookiesByName(rec *httptest.ResponseRecorder) map[string]*http.Cookie {
	cookies := make(map[string]*http.Cookie)
	for _, cookie := range rec.Result().Cookies() {
		cookies[cookie.Name] = cookie
	}

	return cookies
}

func userCookieValue(json string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(json))
}

func TestSessionMiddleware_NoCookies_ExpiresBoth(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)

	sessionUC.EXPECT().
		Resume(mock.Anything, entity.AnonymousSession).
		Return(usecase.ResumeResult{Session: entity.AnonymousSession, Outcome: usecase.SessionAnonymous})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/virtualcheck/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen entity.Session
	err := m.Handle(func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.True(t, seen.IsAnonymous())

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, "pb_auth")
	require.Contains(t, cookies, "pb_user")
	assert.Equal(t, -1, cookies["pb_auth"].MaxAge)
	assert.Equal(t, -1, cookies["pb_user"].MaxAge)
	assert.Empty(t, cookies["pb_auth"].Value)
}

func TestSessionMiddleware_RenewedSession_ExportsBothCookies(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)

	renewed := entity.NewSession("token-2", &entity.Principal{
		ID:       "u1",
		Email:    "admin@example.com",
		Snapshot: []byte(`{"id":"u1","email":"admin@example.com"}`),
	})

	sessionUC.EXPECT().
		Resume(mock.Anything, mock.MatchedBy(func(s entity.Session) bool {
			p := s.Principal()

			return s.Credential() == "token-1" && p != nil && p.ID == "u1" && p.Email == "admin@example.com"
		})).
		Return(usecase.ResumeResult{Session: renewed, Outcome: usecase.SessionRenewed})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "pb_auth", Value: "token-1"})
	req.AddCookie(&http.Cookie{Name: "pb_user", Value: userCookieValue(`{"id":"u1","email":"admin@example.com"}`)})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen entity.Session
	err := m.Handle(func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.Equal(t, entity.Credential("token-2"), seen.Credential())

	cookies := cookiesByName(rec)
	require.Contains(t, cookies, "pb_auth")
	require.Contains(t, cookies, "pb_user")

	auth := cookies["pb_auth"]
	assert.Equal(t, "token-2", auth.Value)
	assert.Equal(t, 604800, auth.MaxAge)
	assert.Equal(t, "/", auth.Path)
	assert.True(t, auth.HttpOnly)
	assert.True(t, auth.Secure)
	assert.Equal(t, http.SameSiteStrictMode, auth.SameSite)

	raw, err := base64.RawURLEncoding.DecodeString(cookies["pb_user"].Value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u1","email":"admin@example.com"}`, string(raw))
}

func TestSessionMiddleware_ClearedSession_ProceedsAnonymously(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)

	sessionUC.EXPECT().
		Resume(mock.Anything, mock.Anything).
		Return(usecase.ResumeResult{
			Session: entity.AnonymousSession,
			Outcome: usecase.SessionCleared,
			Err:     errors.New("refresh rejected"),
		})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "pb_auth", Value: "stale"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handled := false
	err := m.Handle(func(c echo.Context) error {
		handled = true
		assert.False(t, deliverycontext.GetSession(c).IsAuthenticated())

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	assert.True(t, handled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -1, cookiesByName(rec)["pb_auth"].MaxAge)
}

func TestSessionMiddleware_HandlerReplacesSession(t *testing.T) {
	m, sessionUC := newTestSessionMiddleware(t)

	sessionUC.EXPECT().
		Resume(mock.Anything, entity.AnonymousSession).
		Return(usecase.ResumeResult{Session: entity.AnonymousSession})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Handle(func(c echo.Context) error {
		deliverycontext.SetSession(c, entity.NewSession("fresh", &entity.Principal{ID: "u9", Email: "a@b.co"}))

		return c.Redirect(http.StatusSeeOther, "/admin")
	})(c)
	require.NoError(t, err)

	cookies := cookiesByName(rec)
	assert.Equal(t, "fresh", cookies["pb_auth"].Value)

	raw, err := base64.RawURLEncoding.DecodeString(cookies["pb_user"].Value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"u9","email":"a@b.co","name":""}`, string(raw))
}

func TestSessionMiddleware_InsecureCookiesWhenConfigured(t *testing.T) {
	insecure := false
	cfg := testSessionConfig()
	cfg.Session.Secure = &insecure

	sessionUC := mockUsecase.NewMockSessionUsecase(t)
	sessionUC.EXPECT().
		Resume(mock.Anything, mock.Anything).
		Return(usecase.ResumeResult{Session: entity.NewSession("tok", &entity.Principal{ID: "u1"})})

	m := NewSessionMiddleware(SessionMiddlewareParams{SessionUC: sessionUC, Config: cfg, Logger: slog.Default()})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin", nil), rec)

	require.NoError(t, m.Handle(func(c echo.Context) error { return c.NoContent(http.StatusOK) })(c))

	assert.False(t, cookiesByName(rec)["pb_auth"].Secure)
}

func TestDecodePrincipal(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantNil bool
		wantID  string
	}{
		{name: "valid snapshot", value: userCookieValue(`{"id":"u1","email":"x@y.z"}`), wantID: "u1"},
		{name: "padded encoding", value: base64.URLEncoding.EncodeToString([]byte(`{"id":"u2"}`)), wantID: "u2"},
		{name: "not base64", value: "%%%", wantNil: true},
		{name: "not json", value: userCookieValue("nope"), wantNil: true},
		{name: "missing id", value: userCookieValue(`{"email":"x@y.z"}`), wantNil: true},
		{name: "empty", value: "", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal := decodePrincipal(tt.value)
			if tt.wantNil {
				assert.Nil(t, principal)

				return
			}

			require.NotNil(t, principal)
			assert.Equal(t, tt.wantID, principal.ID)
		})
	}
}

func TestEncodePrincipal(t *testing.T) {
	t.Run("snapshot is written as is", func(t *testing.T) {
		value, err := encodePrincipal(&entity.Principal{
			ID:       "u1",
			Snapshot: []byte(`{"id":"u1","avatar":"a.png"}`),
		})
		require.NoError(t, err)
		assert.Equal(t, userCookieValue(`{"id":"u1","avatar":"a.png"}`), value)
	})

	t.Run("round trips without snapshot", func(t *testing.T) {
		value, err := encodePrincipal(&entity.Principal{ID: "u2", Email: "b@c.de", Name: "Bea"})
		require.NoError(t, err)

		principal := decodePrincipal(value)
		require.NotNil(t, principal)
		assert.Equal(t, "u2", principal.ID)
		assert.Equal(t, "b@c.de", principal.Email)
		assert.Equal(t, "Bea", principal.Name)
	})
}
