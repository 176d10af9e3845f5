package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/errors"
	mockUsecase "virtualcheck/internal/mocks/usecase"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTestRedemptionHandler(t *testing.T) (*RedemptionHandler, *mockUsecase.MockRedemptionUsecase) {
	t.Helper()

	redemptionUC := mockUsecase.NewMockRedemptionUsecase(t)

	return NewRedemptionHandler(RedemptionHandlerParams{RedemptionUC: redemptionUC, Logger: slog.Default()}), redemptionUC
}

func withHash(c echo.Context, hash string) {
	c.SetParamNames("hash")
	c.SetParamValues(hash)
}

func validContactForm() url.Values {
	return url.Values{
		"name":      {"  Jane "},
		"last_name": {"Doe"},
		"phone":     {"555-0100"},
		"email":     {"jane@example.com"},
	}
}

func TestRedemptionHandler_Show_Valid(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	link := &entity.RelationLink{
		ID:       "rel1",
		AgencyID: "AG1",
		StoreID:  "ST1",
		Hash:     "abc123",
		Agency:   &entity.Business{Name: "Acme Travel"},
		Store:    &entity.Business{Name: "Corner Shop"},
	}
	redemptionUC.EXPECT().
		Resolve(mock.Anything, entity.AnonymousSession, "abc123").
		Return(link, true, nil)

	c, rec := newFormContext(http.MethodGet, "/virtualcheck/abc123", nil, entity.AnonymousSession)
	withHash(c, "abc123")
	deliverycontext.SetLocale(c, language.Spanish)

	require.NoError(t, h.Show(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.JSONEq(t, `{
		"valid": true,
		"hash": "abc123",
		"agency_id": "AG1",
		"store_id": "ST1",
		"agency_name": "Acme Travel",
		"store_name": "Corner Shop",
		"locale": "es"
	}`, string(body.Data))
}

func TestRedemptionHandler_Show_UnknownHash(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Resolve(mock.Anything, mock.Anything, "zzz999").
		Return(nil, false, nil)

	c, rec := newFormContext(http.MethodGet, "/virtualcheck/zzz999", nil, entity.AnonymousSession)
	withHash(c, "zzz999")

	require.NoError(t, h.Show(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"valid":false}`, string(decodeEnvelope(t, rec).Data))
}

func TestRedemptionHandler_Show_BackendFailure(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Resolve(mock.Anything, mock.Anything, "abc123").
		Return(nil, false, domainerrors.NewRecordStoreError(errors.New("connection reset"), "resolve relation"))

	c, rec := newFormContext(http.MethodGet, "/virtualcheck/abc123", nil, entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Show(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestRedemptionHandler_Submit_Success(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Submit(mock.Anything, entity.AnonymousSession, "abc123", &usecase.ContactInput{
			Name:     "Jane",
			LastName: "Doe",
			Phone:    "555-0100",
			Email:    "jane@example.com",
		}).
		Return(&entity.Contact{ID: "c1", AgencyID: "AG1", StoreID: "ST1"}, nil)

	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", validContactForm(), entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestRedemptionHandler_Submit_LowercasesEmail(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Submit(mock.Anything, entity.AnonymousSession, "abc123", &usecase.ContactInput{
			Name:     "Jane",
			LastName: "Doe",
			Phone:    "555-0100",
			Email:    "jane@example.com",
		}).
		Return(&entity.Contact{ID: "c1", AgencyID: "AG1", StoreID: "ST1"}, nil)

	form := validContactForm()
	form.Set("email", "  Jane@Example.COM ")
	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", form, entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRedemptionHandler_Submit_IgnoresInjectedIDs(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Submit(mock.Anything, mock.Anything, "abc123", mock.AnythingOfType("*usecase.ContactInput")).
		Return(&entity.Contact{ID: "c1", AgencyID: "AG1", StoreID: "ST1"}, nil)

	form := validContactForm()
	form.Set("agency", "EVIL_AGENCY")
	form.Set("store", "EVIL_STORE")
	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", form, entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRedemptionHandler_Submit_EmailOnlyError(t *testing.T) {
	h, _ := newTestRedemptionHandler(t)

	form := validContactForm()
	form.Set("email", "jane.example.com")
	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", form, entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	fieldErrors, ok := body.Error.Details["errors"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, fieldErrors, 1)
	assert.Contains(t, fieldErrors, "email")

	values, ok := body.Error.Details["values"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Jane", values["name"])
	assert.Equal(t, "jane.example.com", values["email"])
}

func TestRedemptionHandler_Submit_MissingFields(t *testing.T) {
	h, _ := newTestRedemptionHandler(t)

	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", url.Values{"name": {"   "}}, entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	fieldErrors, ok := body.Error.Details["errors"].(map[string]any)
	require.True(t, ok)
	for _, field := range []string{"name", "last_name", "phone", "email"} {
		assert.Contains(t, fieldErrors, field)
	}
}

func TestRedemptionHandler_Submit_InvalidHash(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Submit(mock.Anything, mock.Anything, "zzz999", mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrInvalidHash, "resolve relation"))

	c, rec := newFormContext(http.MethodPost, "/virtualcheck/zzz999", validContactForm(), entity.AnonymousSession)
	withHash(c, "zzz999")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "INVALID_HASH", body.Error.Code)

	raw, err := json.Marshal(body.Error.Details["values"])
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Jane","last_name":"Doe","phone":"555-0100","email":"jane@example.com"}`, string(raw))
}

func TestRedemptionHandler_Submit_Duplicate(t *testing.T) {
	h, redemptionUC := newTestRedemptionHandler(t)

	redemptionUC.EXPECT().
		Submit(mock.Anything, mock.Anything, "abc123", mock.Anything).
		Return(nil, domainerrors.ErrDuplicateContact)

	c, rec := newFormContext(http.MethodPost, "/virtualcheck/abc123", validContactForm(), entity.AnonymousSession)
	withHash(c, "abc123")

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "DUPLICATE_CONTACT", decodeEnvelope(t, rec).Error.Code)
}
