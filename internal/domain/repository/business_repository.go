package repository

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// BusinessRepository defines persistence operations for agencies and stores.
// The kind selects the underlying collection.
type BusinessRepository interface {
	List(ctx context.Context, cred entity.Credential, kind entity.BusinessKind, query entity.ListQuery) (*entity.Page[*entity.Business], error)
	Create(ctx context.Context, cred entity.Credential, business *entity.Business) error
	Update(ctx context.Context, cred entity.Credential, business *entity.Business) error
	Delete(ctx context.Context, cred entity.Credential, kind entity.BusinessKind, id string) error
}
