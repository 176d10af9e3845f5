// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/errors"
)

// ErrRelationNotFound is returned when no relation link matches a hash or id.
// It is a normal outcome, distinct from a backend failure.
var ErrRelationNotFound = errors.New("relation link not found")

// RelationRepository defines persistence operations for agency/store relation links.
type RelationRepository interface {
	// FindByHash resolves a relation hash, expanding agency and store.
	// Returns ErrRelationNotFound when no link matches.
	FindByHash(ctx context.Context, cred entity.Credential, hash string) (*entity.RelationLink, error)

	// FindByID retrieves a relation link by its record id.
	FindByID(ctx context.Context, cred entity.Credential, id string) (*entity.RelationLink, error)

	// List returns a page of relation links, newest first.
	List(ctx context.Context, cred entity.Credential, query entity.ListQuery) (*entity.Page[*entity.RelationLink], error)

	// Create persists a new relation link and fills in its id.
	Create(ctx context.Context, cred entity.Credential, link *entity.RelationLink) error

	// Delete removes a relation link by id.
	Delete(ctx context.Context, cred entity.Credential, id string) error
}
