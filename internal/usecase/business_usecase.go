package usecase

import (
	"context"
	"strings"

	"virtualcheck/internal/domain/entity"
)

// BusinessInput is the admin form for an agency or store, address included.
type BusinessInput struct {
	Kind      entity.BusinessKind
	ID        string
	Name      string
	Phone     string
	Email     string
	Website   string
	AddressID string
	Address   entity.Address
}

// BusinessUsecase defines admin operations on agencies and stores.
type BusinessUsecase interface {
	List(ctx context.Context, session entity.Session, kind entity.BusinessKind, query entity.ListQuery) (*entity.Page[*entity.Business], error)
	Create(ctx context.Context, session entity.Session, input *BusinessInput) (*entity.Business, error)
	Update(ctx context.Context, session entity.Session, input *BusinessInput) (*entity.Business, error)
	Delete(ctx context.Context, session entity.Session, kind entity.BusinessKind, id string) error
}

// ToBusiness maps the form fields onto a business entity without its address.
func (in *BusinessInput) ToBusiness() *entity.Business {
	return &entity.Business{
		ID:      in.ID,
		Kind:    in.Kind,
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Website: strings.TrimSpace(in.Website),
	}
}
