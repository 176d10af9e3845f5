package usecase

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// RelationUsecase defines admin operations on agency/store relation links.
type RelationUsecase interface {
	List(ctx context.Context, session entity.Session, query entity.ListQuery) (*entity.Page[*entity.RelationLink], error)
	// Create links an agency and a store under a freshly derived hash.
	Create(ctx context.Context, session entity.Session, agencyID, storeID string) (*entity.RelationLink, error)
	Delete(ctx context.Context, session entity.Session, id string) error
	// QRCode renders the public page URL of a link as a PNG.
	QRCode(ctx context.Context, session entity.Session, id string) ([]byte, error)
}
