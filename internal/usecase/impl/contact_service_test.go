package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/errors"
	mockRepo "virtualcheck/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var adminSession = entity.NewSession("admin-token", &entity.Principal{ID: "u1", Email: "admin@example.com"})

func newContactService(t *testing.T, now time.Time) (*contactService, *mockRepo.MockContactRepository) {
	repo := mockRepo.NewMockContactRepository(t)
	svc := NewContactService(repo, newTestLogger()).(*contactService)
	svc.now = func() time.Time { return now }

	return svc, repo
}

func TestContactService_List_NormalizesPaging(t *testing.T) {
	svc, repo := newContactService(t, time.Now())
	ctx := context.Background()
	page := &entity.Page[*entity.Contact]{Page: 1, PerPage: entity.DefaultPerPage}

	repo.EXPECT().List(ctx, entity.Credential("admin-token"), entity.ListQuery{Page: 1, PerPage: entity.DefaultPerPage, Search: "doe"}).Return(page, nil)

	got, err := svc.List(ctx, adminSession, entity.ListQuery{Page: 0, Search: "doe"})

	require.NoError(t, err)
	assert.Same(t, page, got)
}

func TestContactService_List_BackendFailure(t *testing.T) {
	svc, repo := newContactService(t, time.Now())
	ctx := context.Background()

	repo.EXPECT().List(ctx, entity.Credential("admin-token"), entity.ListQuery{Page: 1, PerPage: entity.DefaultPerPage}).Return(nil, errors.New("timeout"))

	_, err := svc.List(ctx, adminSession, entity.ListQuery{})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestContactService_UpdateStatus_RedeemedStampsTime(t *testing.T) {
	updateTime := time.Date(2024, 6, 1, 9, 30, 15, 123000000, time.UTC)
	svc, repo := newContactService(t, updateTime)
	ctx := context.Background()

	repo.EXPECT().UpdateFields(ctx, entity.Credential("admin-token"), "c1", map[string]any{
		"redeemed":    true,
		"redeemed_at": "2024-06-01 09:30:15.123Z",
	}).Return(nil).Once()

	err := svc.UpdateStatus(ctx, adminSession, "c1", "redeemed", true)

	require.NoError(t, err)
}

func TestContactService_UpdateStatus_UnredeemKeepsTimestamp(t *testing.T) {
	svc, repo := newContactService(t, time.Now())
	ctx := context.Background()

	// redeemed_at is deliberately absent, so the stored stamp survives.
	repo.EXPECT().UpdateFields(ctx, entity.Credential("admin-token"), "c1", map[string]any{
		"redeemed": false,
	}).Return(nil).Once()

	err := svc.UpdateStatus(ctx, adminSession, "c1", "redeemed", false)

	require.NoError(t, err)
}

func TestContactService_UpdateStatus_OtherFlags(t *testing.T) {
	for _, field := range []string{"acceptance", "virtual_check_active", "email_sent"} {
		t.Run(field, func(t *testing.T) {
			svc, repo := newContactService(t, time.Now())
			ctx := context.Background()

			repo.EXPECT().UpdateFields(ctx, entity.Credential("admin-token"), "c1", map[string]any{field: true}).Return(nil).Once()

			require.NoError(t, svc.UpdateStatus(ctx, adminSession, "c1", field, true))
		})
	}
}

func TestContactService_UpdateStatus_RejectsUnknownField(t *testing.T) {
	svc, _ := newContactService(t, time.Now())

	for _, field := range []string{"email", "agency", "redeemed_at", "name"} {
		err := svc.UpdateStatus(context.Background(), adminSession, "c1", field, true)

		assert.ErrorIs(t, err, domainerrors.ErrUnknownContactField, field)
	}
}

func TestContactService_UpdateStatus_MissingFields(t *testing.T) {
	svc, _ := newContactService(t, time.Now())

	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), adminSession, "", "redeemed", true), domainerrors.ErrMissingFields)
	assert.ErrorIs(t, svc.UpdateStatus(context.Background(), adminSession, "c1", "", true), domainerrors.ErrMissingFields)
}
