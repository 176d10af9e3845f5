package pocketbase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relationJSON = `{
	"id": "rel1",
	"agency": "AG1",
	"store": "ST1",
	"relation_hash": "abc123",
	"created": "2024-01-02 03:04:05.000Z",
	"expand": {
		"agency": {"id": "AG1", "name": "Agency One"},
		"store": {"id": "ST1", "name": "Store One"}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(server.URL, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestClient_SendsCredentialAndRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token-1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-42", r.Header.Get(deliverycontext.HeaderXRequestID))
		writeJSON(w, http.StatusOK, `{"page":1,"perPage":1,"totalItems":0,"totalPages":0,"items":[]}`)
	})
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	_, err := getList[relationRecord](ctx, client, "token-1", collectionRelations, ListOptions{Page: 1})

	require.NoError(t, err)
}

func TestClient_OmitsAuthorizationWhenAnonymous(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Header["Authorization"]
		assert.False(t, ok)
		writeJSON(w, http.StatusOK, `{"items":[]}`)
	})

	_, err := getList[relationRecord](context.Background(), client, "", collectionRelations, ListOptions{})

	require.NoError(t, err)
}

func TestClient_DecodesErrorResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusForbidden, `{"code":403,"message":"Only admins can perform this action.","data":{}}`)
	})

	_, err := getList[relationRecord](context.Background(), client, "", collectionRelations, ListOptions{})

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusForbidden, respErr.Status)
	assert.Equal(t, "Only admins can perform this action.", respErr.Message)
	assert.True(t, IsClientError(err))
	assert.False(t, IsNotFound(err))
}

func TestClient_ErrorWithoutBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := deleteRecord(context.Background(), client, "", collectionContacts, "c1")

	var respErr *ResponseError
	require.True(t, errors.As(err, &respErr))
	assert.Equal(t, http.StatusText(http.StatusBadGateway), respErr.Message)
	assert.False(t, IsClientError(err))
}

func TestRelationRepository_FindByHash(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/agency_stores/records", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "relation_hash = 'abc123'", q.Get("filter"))
		assert.Equal(t, "agency,store", q.Get("expand"))
		assert.Equal(t, "1", q.Get("perPage"))
		writeJSON(w, http.StatusOK, `{"page":1,"perPage":1,"totalItems":1,"totalPages":1,"items":[`+relationJSON+`]}`)
	})
	repo := NewRelationRepository(client)

	link, err := repo.FindByHash(context.Background(), "", "abc123")

	require.NoError(t, err)
	assert.Equal(t, "rel1", link.ID)
	assert.Equal(t, "AG1", link.AgencyID)
	assert.Equal(t, "ST1", link.StoreID)
	assert.Equal(t, "Agency One", link.AgencyName())
	assert.Equal(t, "Store One", link.StoreName())
	assert.Equal(t, 2024, link.CreatedAt.Year())
}

func TestRelationRepository_FindByHash_NoMatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"page":1,"perPage":1,"totalItems":0,"totalPages":0,"items":[]}`)
	})
	repo := NewRelationRepository(client)

	link, err := repo.FindByHash(context.Background(), "", "zzz999")

	assert.Nil(t, link)
	assert.ErrorIs(t, err, repository.ErrRelationNotFound)
}

func TestRelationRepository_FindByHash_BackendFailureIsNotNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"code":500,"message":"boom"}`)
	})
	repo := NewRelationRepository(client)

	_, err := repo.FindByHash(context.Background(), "", "abc123")

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrRelationNotFound)
}

func TestRelationRepository_FindByHash_Concurrent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"items":[`+relationJSON+`]}`)
	})
	repo := NewRelationRepository(client)

	type result struct {
		link *entity.RelationLink
		err  error
	}
	results := make(chan result, 2)
	for range 2 {
		go func() {
			link, err := repo.FindByHash(context.Background(), "", "abc123")
			results <- result{link, err}
		}()
	}

	for range 2 {
		res := <-results
		require.NoError(t, res.err)
		assert.Equal(t, "AG1", res.link.AgencyID)
		assert.Equal(t, "ST1", res.link.StoreID)
	}
}

func TestRelationRepository_FindByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/agency_stores/records/missing", r.URL.Path)
		writeJSON(w, http.StatusNotFound, `{"code":404,"message":"The requested resource wasn't found."}`)
	})
	repo := NewRelationRepository(client)

	_, err := repo.FindByID(context.Background(), "token", "missing")

	assert.ErrorIs(t, err, repository.ErrRelationNotFound)
}

func TestRelationRepository_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"agency": "AG1", "store": "ST1", "relation_hash": "h"}, body)
		writeJSON(w, http.StatusOK, `{"id":"rel9","agency":"AG1","store":"ST1","relation_hash":"h","created":"2024-02-03 04:05:06.000Z"}`)
	})
	repo := NewRelationRepository(client)
	link := &entity.RelationLink{AgencyID: "AG1", StoreID: "ST1", Hash: "h"}

	err := repo.Create(context.Background(), "token", link)

	require.NoError(t, err)
	assert.Equal(t, "rel9", link.ID)
	assert.Equal(t, 2024, link.CreatedAt.Year())
}

func TestContactRepository_ExistsForPair(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "(agency = 'AG1') && (store = 'ST1') && (email = 'jane@example.com')", r.URL.Query().Get("filter"))
		writeJSON(w, http.StatusOK, `{"page":1,"perPage":1,"totalItems":1,"totalPages":1,"items":[{"id":"c1"}]}`)
	})
	repo := NewContactRepository(client)

	exists, err := repo.ExistsForPair(context.Background(), "", "AG1", "ST1", "jane@example.com")

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestContactRepository_Create(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AG1", body["agency"])
		assert.Equal(t, "ST1", body["store"])
		assert.Equal(t, false, body["acceptance"])
		assert.Equal(t, true, body["virtual_check_active"])
		_, hasAddress := body["address"]
		assert.False(t, hasAddress)
		writeJSON(w, http.StatusOK, `{"id":"c1","created":"2024-02-03 04:05:06.000Z"}`)
	})
	repo := NewContactRepository(client)
	link := &entity.RelationLink{AgencyID: "AG1", StoreID: "ST1"}
	contact := entity.NewRedemptionContact("Jane", "Doe", "555-0100", "jane@example.com", link)

	err := repo.Create(context.Background(), "", contact)

	require.NoError(t, err)
	assert.Equal(t, "c1", contact.ID)
}

func TestContactRepository_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "20", q.Get("perPage"))
		assert.Equal(t, "-created", q.Get("sort"))
		assert.Equal(t, "agency,store", q.Get("expand"))
		assert.Contains(t, q.Get("filter"), "last_name ~ 'doe'")
		writeJSON(w, http.StatusOK, `{"page":2,"perPage":20,"totalItems":21,"totalPages":2,"items":[
			{"id":"c1","name":"Jane","redeemed":true,"redeemed_at":"2024-03-01 10:00:00.000Z","expand":{"agency":{"id":"AG1","name":"Agency One"}}}
		]}`)
	})
	repo := NewContactRepository(client)

	page, err := repo.List(context.Background(), "token", entity.ListQuery{Page: 2, Search: "doe"})

	require.NoError(t, err)
	assert.Equal(t, 21, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 1)
	require.NotNil(t, page.Items[0].RedeemedAt)
	assert.Equal(t, 3, int(page.Items[0].RedeemedAt.Month()))
	assert.Equal(t, "Agency One", page.Items[0].Agency.Name)
	assert.Nil(t, page.Items[0].Store)
}

func TestContactRepository_UpdateFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/collections/contacts/records/c1", r.URL.Path)
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"email_sent": true}, body)
		writeJSON(w, http.StatusOK, `{"id":"c1"}`)
	})
	repo := NewContactRepository(client)

	err := repo.UpdateFields(context.Background(), "token", "c1", map[string]any{"email_sent": true})

	require.NoError(t, err)
}

func TestBusinessRepository_RoutesByKind(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		assert.Equal(t, "address", r.URL.Query().Get("expand"))
		writeJSON(w, http.StatusOK, `{"items":[{"id":"b1","name":"Biz","address":"ad1","expand":{"address":{"id":"ad1","line":"Main St 1","city":"Lima"}}}]}`)
	})
	repo := NewBusinessRepository(client)

	agencies, err := repo.List(context.Background(), "token", entity.BusinessKindAgency, entity.ListQuery{})
	require.NoError(t, err)
	_, err = repo.List(context.Background(), "token", entity.BusinessKindStore, entity.ListQuery{})
	require.NoError(t, err)

	mu.Lock()
	assert.Equal(t, []string{"/api/collections/agencies/records", "/api/collections/stores/records"}, paths)
	mu.Unlock()
	require.Len(t, agencies.Items, 1)
	assert.Equal(t, entity.BusinessKindAgency, agencies.Items[0].Kind)
	require.NotNil(t, agencies.Items[0].Address)
	assert.Equal(t, "Lima", agencies.Items[0].Address.City)
}

func TestBusinessRepository_UnknownKind(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	repo := NewBusinessRepository(client)

	err := repo.Delete(context.Background(), "token", entity.BusinessKind("warehouse"), "b1")

	assert.Error(t, err)
	assert.Zero(t, calls.Load())
}

func TestBusinessRepository_UpdateClearsAddressWhenUnset(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		value, ok := body["address"]
		assert.True(t, ok)
		assert.Nil(t, value)
		writeJSON(w, http.StatusOK, `{"id":"b1","updated":"2024-02-03 04:05:06.000Z"}`)
	})
	repo := NewBusinessRepository(client)

	err := repo.Update(context.Background(), "token", &entity.Business{ID: "b1", Kind: entity.BusinessKindStore, Name: "Biz"})

	require.NoError(t, err)
}

func TestAddressRepository_CreateAndUpdate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			assert.Equal(t, "/api/collections/addresses/records", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"id":"ad1"}`)
		case http.MethodPatch:
			assert.Equal(t, "/api/collections/addresses/records/ad1", r.URL.Path)
			writeJSON(w, http.StatusOK, `{"id":"ad1"}`)
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	})
	repo := NewAddressRepository(client)
	address := &entity.Address{Line: "Main St 1", City: "Lima"}

	require.NoError(t, repo.CreateAddress(context.Background(), "token", address))
	assert.Equal(t, "ad1", address.ID)

	address.Zip = "15001"
	require.NoError(t, repo.UpdateAddress(context.Background(), "token", address))
	assert.Error(t, repo.UpdateAddress(context.Background(), "token", &entity.Address{}))
}

func TestAuthGateway_AuthWithPassword(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/users/auth-with-password", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin@example.com", body["identity"])
		writeJSON(w, http.StatusOK, `{"token":"tok-1","record":{"id":"u1","email":"admin@example.com","name":"Admin"}}`)
	})
	gateway := NewAuthGateway(client)

	session, err := gateway.AuthWithPassword(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
	assert.Equal(t, entity.Credential("tok-1"), session.Credential())
	assert.True(t, session.IsAuthenticated())
	assert.Equal(t, "u1", session.Principal().ID)
	assert.JSONEq(t, `{"id":"u1","email":"admin@example.com","name":"Admin"}`, string(session.Principal().Snapshot))
}

func TestAuthGateway_AuthWithPassword_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"code":400,"message":"Failed to authenticate.","data":{}}`)
	})
	gateway := NewAuthGateway(client)

	session, err := gateway.AuthWithPassword(context.Background(), "admin@example.com", "wrong")

	assert.True(t, session.IsAnonymous())
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthGateway_AuthWithPassword_BackendDown(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	gateway := NewAuthGateway(client)

	_, err := gateway.AuthWithPassword(context.Background(), "admin@example.com", "secret")

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthGateway_AuthRefresh(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/collections/users/auth-refresh", r.URL.Path)
		assert.Equal(t, "old-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{"token":"new-token","record":{"id":"u1","email":"admin@example.com"}}`)
	})
	gateway := NewAuthGateway(client)
	old := entity.NewSession("old-token", &entity.Principal{ID: "u1"})

	renewed, err := gateway.AuthRefresh(context.Background(), old)

	require.NoError(t, err)
	assert.Equal(t, entity.Credential("new-token"), renewed.Credential())
	assert.Equal(t, entity.Credential("old-token"), old.Credential())
}

func TestAuthGateway_AuthRefresh_Anonymous(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	gateway := NewAuthGateway(client)

	_, err := gateway.AuthRefresh(context.Background(), entity.AnonymousSession)

	assert.Error(t, err)
	assert.Zero(t, calls.Load())
}
