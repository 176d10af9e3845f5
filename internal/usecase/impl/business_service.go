package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/usecase"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	businessRepo repository.BusinessRepository
	addressRepo  repository.AddressRepository
	logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	businessRepo repository.BusinessRepository,
	addressRepo repository.AddressRepository,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: businessRepo,
		addressRepo:  addressRepo,
		logger:       logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *businessService) List(ctx context.Context, session entity.Session, kind entity.BusinessKind, query entity.ListQuery) (*entity.Page[*entity.Business], error) {
	if !kind.IsValid() {
		return nil, domainerrors.ErrNotFound
	}

	page, err := srv.businessRepo.List(ctx, session.Credential(), kind, query.Normalize())
	if err != nil {
		srv.log(ctx).Error("Failed to list businesses", slog.String("kind", string(kind)), slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "list "+string(kind))
	}

	return page, nil
}

func (srv *businessService) Create(ctx context.Context, session entity.Session, input *usecase.BusinessInput) (*entity.Business, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrNotFound
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": {"name"}})
	}

	business := input.ToBusiness()
	business.AddressID = srv.upsertAddress(ctx, session, input)

	if err := srv.businessRepo.Create(ctx, session.Credential(), business); err != nil {
		srv.log(ctx).Error("Failed to create business", slog.String("kind", string(input.Kind)), slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "create "+string(input.Kind))
	}

	srv.log(ctx).Info("Business created", slog.String("kind", string(business.Kind)), slog.String("id", business.ID))

	return business, nil
}

func (srv *businessService) Update(ctx context.Context, session entity.Session, input *usecase.BusinessInput) (*entity.Business, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrNotFound
	}

	var missing []string
	if input.ID == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": missing})
	}

	business := input.ToBusiness()
	business.AddressID = srv.upsertAddress(ctx, session, input)

	if err := srv.businessRepo.Update(ctx, session.Credential(), business); err != nil {
		srv.log(ctx).Error("Failed to update business",
			slog.String("kind", string(input.Kind)),
			slog.String("id", input.ID),
			slog.Any("error", err),
		)

		return nil, domainerrors.NewRecordStoreError(err, "update "+string(input.Kind))
	}

	return business, nil
}

// Delete removes the business. Its address record is kept.
func (srv *businessService) Delete(ctx context.Context, session entity.Session, kind entity.BusinessKind, id string) error {
	if !kind.IsValid() {
		return domainerrors.ErrNotFound
	}
	if id == "" {
		return domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": {"id"}})
	}

	if err := srv.businessRepo.Delete(ctx, session.Credential(), kind, id); err != nil {
		srv.log(ctx).Error("Failed to delete business", slog.String("kind", string(kind)), slog.String("id", id), slog.Any("error", err))

		return domainerrors.NewRecordStoreError(err, "delete "+string(kind))
	}

	return nil
}

// upsertAddress returns the address id the business should point at. An
// attached address is updated in place; otherwise one is created only when
// some address field is filled. Failures are logged and never block the
// business write.
func (srv *businessService) upsertAddress(ctx context.Context, session entity.Session, input *usecase.BusinessInput) string {
	address := input.Address

	if input.AddressID != "" {
		address.ID = input.AddressID
		if err := srv.addressRepo.UpdateAddress(ctx, session.Credential(), &address); err != nil {
			srv.log(ctx).Warn("Failed to update address", slog.String("address_id", input.AddressID), slog.Any("error", err))
		}

		return input.AddressID
	}

	if address.IsEmpty() {
		return ""
	}

	if err := srv.addressRepo.CreateAddress(ctx, session.Credential(), &address); err != nil {
		srv.log(ctx).Warn("Failed to create address", slog.Any("error", err))

		return ""
	}

	return address.ID
}
