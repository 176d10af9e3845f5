package pocketbase

import (
	"context"
	"net/http"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/errors"
)

const relationExpand = "agency,store"

type relationRepository struct {
	client *Client
}

// NewRelationRepository creates a RelationRepository over the agency_stores collection.
func NewRelationRepository(client *Client) repository.RelationRepository {
	return &relationRepository{client: client}
}

// FindByHash resolves a hash with a single exact-match query.
func (repo *relationRepository) FindByHash(ctx context.Context, cred entity.Credential, hash string) (*entity.RelationLink, error) {
	resp, err := getList[relationRecord](ctx, repo.client, cred, collectionRelations, ListOptions{
		Page:    1,
		PerPage: 1,
		Filter:  Eq("relation_hash", hash),
		Expand:  relationExpand,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query relation by hash")
	}

	if len(resp.Items) == 0 {
		return nil, repository.ErrRelationNotFound
	}

	return resp.Items[0].toEntity(), nil
}

func (repo *relationRepository) FindByID(ctx context.Context, cred entity.Credential, id string) (*entity.RelationLink, error) {
	var record relationRecord
	err := repo.client.send(ctx, http.MethodGet, recordPath(collectionRelations, id), ListOptions{Expand: relationExpand}.values(), cred, nil, &record)
	if err != nil {
		if IsNotFound(err) {
			return nil, repository.ErrRelationNotFound
		}

		return nil, errors.Wrap(err, "failed to fetch relation")
	}

	return record.toEntity(), nil
}

func (repo *relationRepository) List(ctx context.Context, cred entity.Credential, query entity.ListQuery) (*entity.Page[*entity.RelationLink], error) {
	query = query.Normalize()

	resp, err := getList[relationRecord](ctx, repo.client, cred, collectionRelations, ListOptions{
		Page:    query.Page,
		PerPage: query.PerPage,
		Filter:  Search(query.Search, "relation_hash", "agency.name", "store.name"),
		Sort:    "-created",
		Expand:  relationExpand,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list relations")
	}

	return newPage(resp, (*relationRecord).toEntity), nil
}

func (repo *relationRepository) Create(ctx context.Context, cred entity.Credential, link *entity.RelationLink) error {
	record, err := createRecord[relationRecord](ctx, repo.client, cred, collectionRelations, relationPayload{
		Agency:       link.AgencyID,
		Store:        link.StoreID,
		RelationHash: link.Hash,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create relation")
	}

	link.ID = record.ID
	link.CreatedAt = record.Created.Time

	return nil
}

func (repo *relationRepository) Delete(ctx context.Context, cred entity.Credential, id string) error {
	if err := deleteRecord(ctx, repo.client, cred, collectionRelations, id); err != nil {
		if IsNotFound(err) {
			return repository.ErrRelationNotFound
		}

		return errors.Wrap(err, "failed to delete relation")
	}

	return nil
}
