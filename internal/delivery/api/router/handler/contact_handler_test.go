package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	mockUsecase "virtualcheck/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContactHandler(t *testing.T) (*ContactHandler, *mockUsecase.MockContactUsecase) {
	t.Helper()

	contactUC := mockUsecase.NewMockContactUsecase(t)

	return NewContactHandler(ContactHandlerParams{ContactUC: contactUC, Logger: slog.Default()}), contactUC
}

func TestContactHandler_List(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	redeemedAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	contactUC.EXPECT().
		List(mock.Anything, adminSession, entity.ListQuery{Page: 2, PerPage: entity.DefaultPerPage, Search: "jane"}).
		Return(&entity.Page[*entity.Contact]{
			Items: []*entity.Contact{{
				ID:         "c1",
				Name:       "Jane",
				Email:      "jane@example.com",
				Redeemed:   true,
				RedeemedAt: &redeemedAt,
				AgencyID:   "AG1",
				Agency:     &entity.Business{Name: "Acme Travel"},
				StoreID:    "ST1",
			}},
			Page:       2,
			PerPage:    20,
			TotalItems: 21,
			TotalPages: 2,
		}, nil)

	c, rec := newFormContext(http.MethodGet, "/admin?page=2&search=jane", nil, adminSession)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var page PageView[ContactView]
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 21, page.TotalItems)
	assert.Equal(t, "jane", page.Search)
	require.Len(t, page.Records, 1)
	assert.Equal(t, "Acme Travel", page.Records[0].AgencyName)
	require.NotNil(t, page.Records[0].RedeemedAt)
	assert.True(t, redeemedAt.Equal(*page.Records[0].RedeemedAt))
}

func TestContactHandler_List_BadPageFallsBackToFirst(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	contactUC.EXPECT().
		List(mock.Anything, adminSession, entity.ListQuery{Page: 1, PerPage: entity.DefaultPerPage}).
		Return(&entity.Page[*entity.Contact]{Page: 1}, nil)

	c, rec := newFormContext(http.MethodGet, "/admin?page=abc", nil, adminSession)

	require.NoError(t, h.List(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_UpdateStatus(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	contactUC.EXPECT().
		UpdateStatus(mock.Anything, adminSession, "c1", "redeemed", true).
		Return(nil)

	form := url.Values{"contactId": {"c1"}, "field": {"redeemed"}, "value": {"true"}}
	c, rec := newFormContext(http.MethodPost, "/admin/contacts/status", form, adminSession)

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"field":"redeemed","value":true}`, string(decodeEnvelope(t, rec).Data))
}

func TestContactHandler_UpdateStatus_UnknownField(t *testing.T) {
	h, contactUC := newTestContactHandler(t)

	contactUC.EXPECT().
		UpdateStatus(mock.Anything, adminSession, "c1", "name", false).
		Return(domainerrors.ErrUnknownContactField.WithDetails(map[string]string{"field": "name"}))

	form := url.Values{"contactId": {"c1"}, "field": {"name"}, "value": {"false"}}
	c, rec := newFormContext(http.MethodPost, "/admin/contacts/status", form, adminSession)

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_FIELD", decodeEnvelope(t, rec).Error.Code)
}

func TestContactHandler_UpdateStatus_UnparsableValue(t *testing.T) {
	h, _ := newTestContactHandler(t)

	form := url.Values{"contactId": {"c1"}, "field": {"redeemed"}, "value": {"maybe"}}
	c, rec := newFormContext(http.MethodPost, "/admin/contacts/status", form, adminSession)

	require.NoError(t, h.UpdateStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MISSING_FIELDS", decodeEnvelope(t, rec).Error.Code)
}
