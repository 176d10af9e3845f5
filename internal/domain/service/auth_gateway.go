// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// AuthGateway is the record store's stateful auth sub-resource.
// Every call returns a new session value instead of mutating one.
type AuthGateway interface {
	// AuthWithPassword exchanges an identifier and secret for a session.
	AuthWithPassword(ctx context.Context, identity, password string) (entity.Session, error)

	// AuthRefresh renews the credential of an existing session.
	AuthRefresh(ctx context.Context, session entity.Session) (entity.Session, error)
}

// TokenInspector decides whether a credential plausibly claims validity
// without contacting the record store.
type TokenInspector interface {
	IsPlausible(credential entity.Credential) bool
}
