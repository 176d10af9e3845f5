// Package pocketbase is a typed client for the PocketBase-compatible record store.
// Each call receives the credential it should act with; the client itself keeps no
// auth state and is safe to share between requests.
package pocketbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"virtualcheck/config"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/errors"

	"go.uber.org/fx"
)

const (
	collectionAgencies  = "agencies"
	collectionStores    = "stores"
	collectionRelations = "agency_stores"
	collectionContacts  = "contacts"
	collectionAddresses = "addresses"
	collectionUsers     = "users"
)

// ResponseError is a non-2xx answer from the record store.
type ResponseError struct {
	Status  int            `json:"-"`
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("record store responded %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a 404 from the record store.
func IsNotFound(err error) bool {
	var respErr *ResponseError

	return errors.As(err, &respErr) && respErr.Status == http.StatusNotFound
}

// IsClientError reports whether the record store rejected the request itself (4xx).
func IsClientError(err error) bool {
	var respErr *ResponseError

	return errors.As(err, &respErr) && respErr.Status >= 400 && respErr.Status < 500
}

// Client talks to the record store REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for Client, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates a record store client. Timeouts are left to the http.Client.
func New(params Params) *Client {
	return NewClient(params.Config.RecordStore.BaseURL, &http.Client{
		Timeout: params.Config.RecordStore.Timeout,
	}, params.Logger)
}

// NewClient creates a client for baseURL using httpClient.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ListOptions are the query parameters of a collection listing.
type ListOptions struct {
	Page    int
	PerPage int
	Filter  Filter
	Sort    string
	Expand  string
}

func (o ListOptions) values() url.Values {
	values := url.Values{}
	if o.Page > 0 {
		values.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		values.Set("perPage", strconv.Itoa(o.PerPage))
	}
	if !o.Filter.IsEmpty() {
		values.Set("filter", o.Filter.String())
	}
	if o.Sort != "" {
		values.Set("sort", o.Sort)
	}
	if o.Expand != "" {
		values.Set("expand", o.Expand)
	}

	return values
}

type listResponse[T any] struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Items      []T `json:"items"`
}

func recordsPath(collection string) string {
	return "/api/collections/" + url.PathEscape(collection) + "/records"
}

func recordPath(collection, id string) string {
	return recordsPath(collection) + "/" + url.PathEscape(id)
}

func getList[T any](ctx context.Context, c *Client, cred entity.Credential, collection string, opts ListOptions) (*listResponse[T], error) {
	var out listResponse[T]
	if err := c.send(ctx, http.MethodGet, recordsPath(collection), opts.values(), cred, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func createRecord[T any](ctx context.Context, c *Client, cred entity.Credential, collection string, body any) (*T, error) {
	var out T
	if err := c.send(ctx, http.MethodPost, recordsPath(collection), nil, cred, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func updateRecord[T any](ctx context.Context, c *Client, cred entity.Credential, collection, id string, body any) (*T, error) {
	var out T
	if err := c.send(ctx, http.MethodPatch, recordPath(collection, id), nil, cred, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func deleteRecord(ctx context.Context, c *Client, cred entity.Credential, collection, id string) error {
	return c.send(ctx, http.MethodDelete, recordPath(collection, id), nil, cred, nil, nil)
}

// send performs one round trip. No retries.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, cred entity.Credential, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cred != "" {
		req.Header.Set("Authorization", string(cred))
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Record store call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respErr := &ResponseError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(respErr); err != nil || respErr.Message == "" {
			respErr.Message = http.StatusText(resp.StatusCode)
		}

		return errors.WithStack(respErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", method, path)
	}

	return nil
}
