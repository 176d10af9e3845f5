package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/errors"
	"virtualcheck/internal/usecase"
)

// relationService implements the RelationUsecase interface.
type relationService struct {
	relationRepo repository.RelationRepository
	hasher       service.RelationHasher
	qrCodeSvc    service.QRCodeService
	logger       *slog.Logger
}

// NewRelationService is the constructor for relationService.
func NewRelationService(
	relationRepo repository.RelationRepository,
	hasher service.RelationHasher,
	qrCodeSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.RelationUsecase {
	return &relationService{
		relationRepo: relationRepo,
		hasher:       hasher,
		qrCodeSvc:    qrCodeSvc,
		logger:       logger,
	}
}

func (srv *relationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *relationService) List(ctx context.Context, session entity.Session, query entity.ListQuery) (*entity.Page[*entity.RelationLink], error) {
	page, err := srv.relationRepo.List(ctx, session.Credential(), query.Normalize())
	if err != nil {
		srv.log(ctx).Error("Failed to list relations", slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "list relations")
	}

	return page, nil
}

// Create derives the pair's hash and stores the link unless the hash is taken.
func (srv *relationService) Create(ctx context.Context, session entity.Session, agencyID, storeID string) (*entity.RelationLink, error) {
	agencyID = strings.TrimSpace(agencyID)
	storeID = strings.TrimSpace(storeID)

	var missing []string
	if agencyID == "" {
		missing = append(missing, "agency")
	}
	if storeID == "" {
		missing = append(missing, "store")
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": missing})
	}

	hash := srv.hasher.Derive(agencyID, storeID)

	_, err := srv.relationRepo.FindByHash(ctx, session.Credential(), hash)
	switch {
	case err == nil:
		return nil, domainerrors.ErrRelationExists
	case !errors.Is(err, repository.ErrRelationNotFound):
		srv.log(ctx).Error("Failed to check existing relation", slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "check relation")
	}

	link := &entity.RelationLink{AgencyID: agencyID, StoreID: storeID, Hash: hash}
	if err := srv.relationRepo.Create(ctx, session.Credential(), link); err != nil {
		srv.log(ctx).Error("Failed to create relation", slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "create relation")
	}

	srv.log(ctx).Info("Relation created",
		slog.String("relation_id", link.ID),
		slog.String("agency_id", agencyID),
		slog.String("store_id", storeID),
	)

	return link, nil
}

func (srv *relationService) Delete(ctx context.Context, session entity.Session, id string) error {
	if id == "" {
		return domainerrors.ErrMissingFields.WithDetails(map[string][]string{"fields": {"id"}})
	}

	if err := srv.relationRepo.Delete(ctx, session.Credential(), id); err != nil {
		if errors.Is(err, repository.ErrRelationNotFound) {
			return domainerrors.ErrNotFound
		}
		srv.log(ctx).Error("Failed to delete relation", slog.String("relation_id", id), slog.Any("error", err))

		return domainerrors.NewRecordStoreError(err, "delete relation")
	}

	return nil
}

func (srv *relationService) QRCode(ctx context.Context, session entity.Session, id string) ([]byte, error) {
	link, err := srv.relationRepo.FindByID(ctx, session.Credential(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRelationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, domainerrors.NewRecordStoreError(err, "fetch relation")
	}

	png, err := srv.qrCodeSvc.GenerateRelationQR(link.Hash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render relation QR code")
	}

	return png, nil
}
