package pocketbase

import (
	"context"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/errors"
)

type contactRepository struct {
	client *Client
}

// NewContactRepository creates a ContactRepository over the contacts collection.
func NewContactRepository(client *Client) repository.ContactRepository {
	return &contactRepository{client: client}
}

func (repo *contactRepository) Create(ctx context.Context, cred entity.Credential, contact *entity.Contact) error {
	record, err := createRecord[contactRecord](ctx, repo.client, cred, collectionContacts, fromContact(contact))
	if err != nil {
		return errors.Wrap(err, "failed to create contact")
	}

	contact.ID = record.ID
	contact.CreatedAt = record.Created.Time

	return nil
}

func (repo *contactRepository) ExistsForPair(ctx context.Context, cred entity.Credential, agencyID, storeID, email string) (bool, error) {
	resp, err := getList[contactRecord](ctx, repo.client, cred, collectionContacts, ListOptions{
		Page:    1,
		PerPage: 1,
		Filter: And(
			Eq("agency", agencyID),
			Eq("store", storeID),
			Eq("email", email),
		),
	})
	if err != nil {
		return false, errors.Wrap(err, "failed to look up existing contact")
	}

	return resp.TotalItems > 0 || len(resp.Items) > 0, nil
}

func (repo *contactRepository) List(ctx context.Context, cred entity.Credential, query entity.ListQuery) (*entity.Page[*entity.Contact], error) {
	query = query.Normalize()

	resp, err := getList[contactRecord](ctx, repo.client, cred, collectionContacts, ListOptions{
		Page:    query.Page,
		PerPage: query.PerPage,
		Filter:  Search(query.Search, "name", "last_name", "email", "phone"),
		Sort:    "-created",
		Expand:  "agency,store",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contacts")
	}

	return newPage(resp, (*contactRecord).toEntity), nil
}

func (repo *contactRepository) UpdateFields(ctx context.Context, cred entity.Credential, id string, fields map[string]any) error {
	if _, err := updateRecord[contactRecord](ctx, repo.client, cred, collectionContacts, id, fields); err != nil {
		return errors.Wrap(err, "failed to update contact")
	}

	return nil
}
