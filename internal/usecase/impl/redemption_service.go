package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/constants"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/errors"
	"virtualcheck/internal/usecase"
)

// Relation hashes are base64url tokens; anything else cannot match a link.
var relationHashPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// redemptionService implements the RedemptionUsecase interface.
type redemptionService struct {
	relationRepo repository.RelationRepository
	contactRepo  repository.ContactRepository
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewRedemptionService is the constructor for redemptionService.
func NewRedemptionService(
	relationRepo repository.RelationRepository,
	contactRepo repository.ContactRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RedemptionUsecase {
	return &redemptionService{
		relationRepo: relationRepo,
		contactRepo:  contactRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

func (srv *redemptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks up a relation link by hash.
func (srv *redemptionService) Resolve(ctx context.Context, session entity.Session, hash string) (*entity.RelationLink, bool, error) {
	if !relationHashPattern.MatchString(hash) {
		return nil, false, nil
	}

	link, err := srv.relationRepo.FindByHash(ctx, session.Credential(), hash)
	if err != nil {
		if errors.Is(err, repository.ErrRelationNotFound) {
			return nil, false, nil
		}

		srv.log(ctx).Error("Failed to resolve relation hash", slog.Any("error", err))

		return nil, false, domainerrors.NewRecordStoreError(err, "resolve relation")
	}

	return link, true, nil
}

// Submit stores a contact for the pair behind hash. Agency and store always
// come from the resolved link.
func (srv *redemptionService) Submit(ctx context.Context, session entity.Session, hash string, input *usecase.ContactInput) (*entity.Contact, error) {
	link, found, err := srv.Resolve(ctx, session, hash)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domainerrors.ErrInvalidHash
	}

	exists, err := srv.contactRepo.ExistsForPair(ctx, session.Credential(), link.AgencyID, link.StoreID, input.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to check for duplicate contact", slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "duplicate check")
	}
	if exists {
		return nil, domainerrors.ErrDuplicateContact
	}

	contact := entity.NewRedemptionContact(input.Name, input.LastName, input.Phone, input.Email, link)
	if err := srv.contactRepo.Create(ctx, session.Credential(), contact); err != nil {
		srv.log(ctx).Error("Failed to create contact",
			slog.String("agency_id", link.AgencyID),
			slog.String("store_id", link.StoreID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrContactCreateFailed, err.Error())
	}

	srv.log(ctx).Info("Contact registered",
		slog.String("contact_id", contact.ID),
		slog.String("agency_id", contact.AgencyID),
		slog.String("store_id", contact.StoreID),
	)

	srv.publishCreated(ctx, contact)

	return contact, nil
}

// publishCreated is best-effort; a failure never reaches the caller.
func (srv *redemptionService) publishCreated(ctx context.Context, contact *entity.Contact) {
	event := &service.ContactCreatedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      constants.EventTypeContactCreated,
		ContactID: contact.ID,
		AgencyID:  contact.AgencyID,
		StoreID:   contact.StoreID,
		Email:     contact.Email,
	}

	if err := srv.publisher.PublishContactCreated(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish contact event",
			slog.String("contact_id", contact.ID),
			slog.Any("error", err),
		)
	}
}
