package pocketbase

import (
	"context"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/errors"
)

type businessRepository struct {
	client *Client
}

// NewBusinessRepository creates a BusinessRepository over the agencies and stores collections.
func NewBusinessRepository(client *Client) repository.BusinessRepository {
	return &businessRepository{client: client}
}

func collectionFor(kind entity.BusinessKind) (string, error) {
	switch kind {
	case entity.BusinessKindAgency:
		return collectionAgencies, nil
	case entity.BusinessKindStore:
		return collectionStores, nil
	default:
		return "", errors.Errorf("unknown business kind %q", kind)
	}
}

func (repo *businessRepository) List(ctx context.Context, cred entity.Credential, kind entity.BusinessKind, query entity.ListQuery) (*entity.Page[*entity.Business], error) {
	collection, err := collectionFor(kind)
	if err != nil {
		return nil, err
	}
	query = query.Normalize()

	resp, err := getList[businessRecord](ctx, repo.client, cred, collection, ListOptions{
		Page:    query.Page,
		PerPage: query.PerPage,
		Filter:  Search(query.Search, "name", "email", "phone"),
		Sort:    "-created",
		Expand:  "address",
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", collection)
	}

	return newPage(resp, func(r *businessRecord) *entity.Business { return r.toEntity(kind) }), nil
}

func (repo *businessRepository) Create(ctx context.Context, cred entity.Credential, business *entity.Business) error {
	collection, err := collectionFor(business.Kind)
	if err != nil {
		return err
	}

	record, err := createRecord[businessRecord](ctx, repo.client, cred, collection, fromBusiness(business))
	if err != nil {
		return errors.Wrapf(err, "failed to create %s record", business.Kind)
	}

	business.ID = record.ID
	business.CreatedAt = record.Created.Time
	business.UpdatedAt = record.Updated.Time

	return nil
}

func (repo *businessRepository) Update(ctx context.Context, cred entity.Credential, business *entity.Business) error {
	collection, err := collectionFor(business.Kind)
	if err != nil {
		return err
	}

	record, err := updateRecord[businessRecord](ctx, repo.client, cred, collection, business.ID, fromBusiness(business))
	if err != nil {
		return errors.Wrapf(err, "failed to update %s %s", business.Kind, business.ID)
	}

	business.UpdatedAt = record.Updated.Time

	return nil
}

// Delete removes the record only; an attached address is left in place.
func (repo *businessRepository) Delete(ctx context.Context, cred entity.Credential, kind entity.BusinessKind, id string) error {
	collection, err := collectionFor(kind)
	if err != nil {
		return err
	}

	if err := deleteRecord(ctx, repo.client, cred, collection, id); err != nil {
		return errors.Wrapf(err, "failed to delete %s %s", kind, id)
	}

	return nil
}
