package repository

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// ContactRepository defines persistence operations for contacts.
type ContactRepository interface {
	// Create persists a new contact and fills in its id.
	Create(ctx context.Context, cred entity.Credential, contact *entity.Contact) error

	// ExistsForPair reports whether a contact with the email already exists for the agency/store pair.
	ExistsForPair(ctx context.Context, cred entity.Credential, agencyID, storeID, email string) (bool, error)

	// List returns a page of contacts, newest first, with agency and store expanded.
	List(ctx context.Context, cred entity.Credential, query entity.ListQuery) (*entity.Page[*entity.Contact], error)

	// UpdateFields patches a contact with the given field values.
	UpdateFields(ctx context.Context, cred entity.Credential, id string, fields map[string]any) error
}
