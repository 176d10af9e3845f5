package usecase

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// ContactUsecase defines admin operations on redeemed contacts.
type ContactUsecase interface {
	List(ctx context.Context, session entity.Session, query entity.ListQuery) (*entity.Page[*entity.Contact], error)
	// UpdateStatus sets one workflow flag. Setting redeemed also stamps redeemed_at.
	UpdateStatus(ctx context.Context, session entity.Session, contactID, field string, value bool) error
}
