package pocketbase

import (
	"context"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/errors"
)

type addressRepository struct {
	client *Client
}

// NewAddressRepository creates an AddressRepository over the addresses collection.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

func (repo *addressRepository) CreateAddress(ctx context.Context, cred entity.Credential, address *entity.Address) error {
	record, err := createRecord[addressRecord](ctx, repo.client, cred, collectionAddresses, fromAddress(address))
	if err != nil {
		return errors.Wrap(err, "failed to create address")
	}

	address.ID = record.ID

	return nil
}

func (repo *addressRepository) UpdateAddress(ctx context.Context, cred entity.Credential, address *entity.Address) error {
	if address.ID == "" {
		return errors.New("address id is required for update")
	}

	if _, err := updateRecord[addressRecord](ctx, repo.client, cred, collectionAddresses, address.ID, fromAddress(address)); err != nil {
		return errors.Wrapf(err, "failed to update address %s", address.ID)
	}

	return nil
}
