package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	mockUsecase "virtualcheck/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: slog.Default()}), sessionUC
}

func TestAuthHandler_LoginPage(t *testing.T) {
	t.Run("signed in admins are sent to the admin page", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newFormContext(http.MethodGet, "/admin/login", nil, adminSession)

		require.NoError(t, h.LoginPage(c))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("locale prefix is kept", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newFormContext(http.MethodGet, "/es/admin/login", nil, adminSession)
		c.SetParamNames("lang")
		c.SetParamValues("es")

		require.NoError(t, h.LoginPage(c))

		assert.Equal(t, "/es/admin", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("anonymous visitors get the form", func(t *testing.T) {
		h, _ := newTestAuthHandler(t)
		c, rec := newFormContext(http.MethodGet, "/admin/login", nil, entity.AnonymousSession)

		require.NoError(t, h.LoginPage(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	sessionUC.EXPECT().
		Login(mock.Anything, "admin@example.com", "s3cret").
		Return(adminSession, nil)

	form := url.Values{"email": {"admin@example.com"}, "password": {"s3cret"}}
	c, rec := newFormContext(http.MethodPost, "/admin/login", form, entity.AnonymousSession)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, entity.Credential("admin-token"), deliverycontext.GetSession(c).Credential())
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, sessionUC := newTestAuthHandler(t)

	sessionUC.EXPECT().
		Login(mock.Anything, "admin@example.com", "wrong").
		Return(entity.AnonymousSession, domainerrors.ErrInvalidCredentials.WithDetails(map[string]string{"email": "admin@example.com"}))

	form := url.Values{"email": {"admin@example.com"}, "password": {"wrong"}}
	c, rec := newFormContext(http.MethodPost, "/admin/login", form, entity.AnonymousSession)

	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
	assert.Equal(t, "admin@example.com", body.Error.Details["email"])
	assert.NotContains(t, rec.Body.String(), "wrong")
	assert.True(t, deliverycontext.GetSession(c).IsAnonymous())
}

func TestAuthHandler_Logout(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newFormContext(http.MethodPost, "/en/admin/logout", url.Values{}, adminSession)
	c.SetParamNames("lang")
	c.SetParamValues("en")

	require.NoError(t, h.Logout(c))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/en/admin/login", rec.Header().Get(echo.HeaderLocation))
	assert.True(t, deliverycontext.GetSession(c).IsAnonymous())
}
