package usecase

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// ContactInput is the customer-provided part of a redemption. It never
// carries agency or store ids; those come from the hash.
type ContactInput struct {
	Name     string
	LastName string
	Phone    string
	Email    string
}

// RedemptionUsecase defines the public virtual check workflow.
type RedemptionUsecase interface {
	// Resolve looks up the relation link behind a hash. A hash matching no link
	// returns (nil, false, nil); only backend failures return an error.
	Resolve(ctx context.Context, session entity.Session, hash string) (*entity.RelationLink, bool, error)
	// Submit re-resolves the hash and stores a contact for the resolved pair.
	Submit(ctx context.Context, session entity.Session, hash string, input *ContactInput) (*entity.Contact, error)
}
