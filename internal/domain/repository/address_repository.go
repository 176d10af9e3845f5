package repository

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// AddressRepository defines persistence operations for addresses.
// Addresses are never deleted together with their owner.
type AddressRepository interface {
	// CreateAddress persists a new address and fills in its id.
	CreateAddress(ctx context.Context, cred entity.Credential, address *entity.Address) error

	// UpdateAddress overwrites an existing address in place.
	UpdateAddress(ctx context.Context, cred entity.Credential, address *entity.Address) error
}
