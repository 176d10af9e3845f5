package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	mockUsecase "virtualcheck/internal/mocks/usecase"
	"virtualcheck/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBusinessHandler(t *testing.T) (*BusinessHandler, *mockUsecase.MockBusinessUsecase) {
	t.Helper()

	businessUC := mockUsecase.NewMockBusinessUsecase(t)

	return NewBusinessHandler(BusinessHandlerParams{BusinessUC: businessUC, Logger: slog.Default()}), businessUC
}

func TestBusinessHandler_List(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)

	businessUC.EXPECT().
		List(mock.Anything, adminSession, entity.BusinessKindStore, entity.ListQuery{Page: 1, PerPage: entity.DefaultPerPage, Search: "corner"}).
		Return(&entity.Page[*entity.Business]{
			Items: []*entity.Business{{
				ID:        "ST1",
				Kind:      entity.BusinessKindStore,
				Name:      "Corner Shop",
				AddressID: "ad1",
				Address:   &entity.Address{ID: "ad1", City: "Lima"},
			}},
			Page:       1,
			TotalItems: 1,
			TotalPages: 1,
		}, nil)

	c, rec := newFormContext(http.MethodGet, "/admin/stores?search=corner", nil, adminSession)

	require.NoError(t, h.List(entity.BusinessKindStore)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var page PageView[BusinessView]
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &page))
	require.Len(t, page.Records, 1)
	assert.Equal(t, "store", page.Records[0].Kind)
	require.NotNil(t, page.Records[0].Address)
	assert.Equal(t, "Lima", page.Records[0].Address.City)
}

func TestBusinessHandler_Create(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)

	businessUC.EXPECT().
		Create(mock.Anything, adminSession, mock.MatchedBy(func(in *usecase.BusinessInput) bool {
			return in.Kind == entity.BusinessKindAgency &&
				in.ID == "" &&
				in.Name == "Acme Travel" &&
				in.Address.Line == "1 Main St" &&
				in.Address.Country == "PE"
		})).
		Return(&entity.Business{ID: "AG1", Kind: entity.BusinessKindAgency, Name: "Acme Travel", AddressID: "ad1"}, nil)

	form := url.Values{
		"id":              {"should-be-ignored"},
		"name":            {"Acme Travel"},
		"address_line":    {"1 Main St"},
		"address_country": {"PE"},
	}
	c, rec := newFormContext(http.MethodPost, "/admin/agencies/create", form, adminSession)

	require.NoError(t, h.Create(entity.BusinessKindAgency)(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	var view BusinessView
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &view))
	assert.Equal(t, "AG1", view.ID)
	assert.Equal(t, "ad1", view.AddressID)
}

func TestBusinessHandler_Create_MissingName(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)

	businessUC.EXPECT().
		Create(mock.Anything, adminSession, mock.Anything).
		Return(nil, domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": {"name"}}))

	c, rec := newFormContext(http.MethodPost, "/admin/agencies/create", url.Values{"phone": {"1"}}, adminSession)

	require.NoError(t, h.Create(entity.BusinessKindAgency)(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "MISSING_FIELDS", body.Error.Code)
	assert.Equal(t, []any{"name"}, body.Error.Details["fields"])
}

func TestBusinessHandler_Update(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)

	businessUC.EXPECT().
		Update(mock.Anything, adminSession, mock.MatchedBy(func(in *usecase.BusinessInput) bool {
			return in.Kind == entity.BusinessKindStore &&
				in.ID == "ST1" &&
				in.AddressID == "ad1" &&
				in.Address.ID == "ad1" &&
				in.Address.City == "Cusco"
		})).
		Return(&entity.Business{ID: "ST1", Kind: entity.BusinessKindStore, Name: "Corner Shop"}, nil)

	form := url.Values{
		"id":           {"ST1"},
		"name":         {"Corner Shop"},
		"address_id":   {"ad1"},
		"address_city": {"Cusco"},
	}
	c, rec := newFormContext(http.MethodPost, "/admin/stores/update", form, adminSession)

	require.NoError(t, h.Update(entity.BusinessKindStore)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBusinessHandler_Delete(t *testing.T) {
	h, businessUC := newTestBusinessHandler(t)

	businessUC.EXPECT().
		Delete(mock.Anything, adminSession, entity.BusinessKindStore, "ST1").
		Return(nil)

	c, rec := newFormContext(http.MethodPost, "/admin/stores/delete", url.Values{"id": {"ST1"}}, adminSession)

	require.NoError(t, h.Delete(entity.BusinessKindStore)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"id":"ST1"}`, string(decodeEnvelope(t, rec).Data))
}
