package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/repository"
	"virtualcheck/internal/usecase"
)

const recordTimeLayout = "2006-01-02 15:04:05.000Z"

// contactService implements the ContactUsecase interface.
type contactService struct {
	contactRepo repository.ContactRepository
	logger      *slog.Logger
	now         func() time.Time
}

// NewContactService is the constructor for contactService.
func NewContactService(contactRepo repository.ContactRepository, logger *slog.Logger) usecase.ContactUsecase {
	return &contactService{
		contactRepo: contactRepo,
		logger:      logger,
		now:         time.Now,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns a page of contacts, newest first.
func (srv *contactService) List(ctx context.Context, session entity.Session, query entity.ListQuery) (*entity.Page[*entity.Contact], error) {
	page, err := srv.contactRepo.List(ctx, session.Credential(), query.Normalize())
	if err != nil {
		srv.log(ctx).Error("Failed to list contacts", slog.Any("error", err))

		return nil, domainerrors.NewRecordStoreError(err, "list contacts")
	}

	return page, nil
}

// UpdateStatus sets one whitelisted flag. redeemed=true also stamps redeemed_at;
// redeemed=false leaves an existing stamp in place.
func (srv *contactService) UpdateStatus(ctx context.Context, session entity.Session, contactID, field string, value bool) error {
	if contactID == "" || field == "" {
		return domainerrors.ErrMissingFields
	}

	flag, ok := entity.ParseContactFlag(field)
	if !ok {
		return domainerrors.ErrUnknownContactField.WithDetails(map[string]string{"field": field})
	}

	fields := map[string]any{string(flag): value}
	if flag == entity.ContactFlagRedeemed && value {
		fields["redeemed_at"] = srv.now().UTC().Format(recordTimeLayout)
	}

	if err := srv.contactRepo.UpdateFields(ctx, session.Credential(), contactID, fields); err != nil {
		srv.log(ctx).Error("Failed to update contact status",
			slog.String("contact_id", contactID),
			slog.String("field", field),
			slog.Any("error", err),
		)

		return domainerrors.NewRecordStoreError(err, "update contact")
	}

	srv.log(ctx).Info("Contact status updated",
		slog.String("contact_id", contactID),
		slog.String("field", field),
		slog.Bool("value", value),
	)

	return nil
}
