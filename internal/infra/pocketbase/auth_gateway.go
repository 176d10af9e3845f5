package pocketbase

import (
	"context"
	"net/http"

	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/errors"
)

type authGateway struct {
	client     *Client
	collection string
}

// NewAuthGateway creates an AuthGateway backed by the users auth collection.
func NewAuthGateway(client *Client) service.AuthGateway {
	return &authGateway{client: client, collection: collectionUsers}
}

func (g *authGateway) authPath(action string) string {
	return "/api/collections/" + g.collection + "/" + action
}

// AuthWithPassword exchanges an identity and password for a new session.
// A 4xx answer means the credentials were rejected.
func (g *authGateway) AuthWithPassword(ctx context.Context, identity, password string) (entity.Session, error) {
	body := map[string]string{
		"identity": identity,
		"password": password,
	}

	var resp authResponse
	if err := g.client.send(ctx, http.MethodPost, g.authPath("auth-with-password"), nil, "", body, &resp); err != nil {
		if IsClientError(err) {
			return entity.AnonymousSession, errors.Wrap(domainerrors.ErrInvalidCredentials, err.Error())
		}

		return entity.AnonymousSession, domainerrors.NewRecordStoreError(err, "auth-with-password")
	}

	session, err := resp.toSession()
	if err != nil {
		return entity.AnonymousSession, domainerrors.NewRecordStoreError(err, "auth-with-password")
	}

	return session, nil
}

// AuthRefresh renews the session's credential. The given session is not modified.
func (g *authGateway) AuthRefresh(ctx context.Context, session entity.Session) (entity.Session, error) {
	if session.IsAnonymous() {
		return entity.AnonymousSession, errors.Wrap(domainerrors.ErrUnauthenticated, "no credential to refresh")
	}

	var resp authResponse
	if err := g.client.send(ctx, http.MethodPost, g.authPath("auth-refresh"), nil, session.Credential(), nil, &resp); err != nil {
		return entity.AnonymousSession, errors.Wrap(err, "auth refresh failed")
	}

	refreshed, err := resp.toSession()
	if err != nil {
		return entity.AnonymousSession, errors.Wrap(err, "auth refresh returned an unusable session")
	}

	return refreshed, nil
}
