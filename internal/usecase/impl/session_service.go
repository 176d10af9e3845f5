// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/errors"
	"virtualcheck/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	gateway   service.AuthGateway
	inspector service.TokenInspector
	logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	gateway service.AuthGateway,
	inspector service.TokenInspector,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		gateway:   gateway,
		inspector: inspector,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resume refreshes a plausible credential exactly once. Any refresh failure
// clears the session instead of failing the request.
func (srv *sessionService) Resume(ctx context.Context, loaded entity.Session) usecase.ResumeResult {
	if loaded.IsAnonymous() {
		return usecase.ResumeResult{Session: entity.AnonymousSession, Outcome: usecase.SessionAnonymous}
	}

	if !srv.inspector.IsPlausible(loaded.Credential()) {
		srv.log(ctx).Debug("Dropping expired or malformed credential")

		return usecase.ResumeResult{Session: entity.AnonymousSession, Outcome: usecase.SessionAnonymous}
	}

	refreshed, err := srv.gateway.AuthRefresh(ctx, loaded)
	if err != nil {
		srv.log(ctx).Warn("Session refresh failed, continuing anonymously", slog.Any("error", err))

		return usecase.ResumeResult{Session: entity.AnonymousSession, Outcome: usecase.SessionCleared, Err: err}
	}

	return usecase.ResumeResult{Session: refreshed, Outcome: usecase.SessionRenewed}
}

// Login authenticates an admin by email and password.
func (srv *sessionService) Login(ctx context.Context, email, password string) (entity.Session, error) {
	email = strings.TrimSpace(email)
	rejected := domainerrors.ErrInvalidCredentials.WithDetails(map[string]string{"email": email})

	if email == "" || password == "" {
		return entity.AnonymousSession, rejected
	}

	session, err := srv.gateway.AuthWithPassword(ctx, email, password)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			srv.log(ctx).Info("Login rejected", slog.String("email", email))

			return entity.AnonymousSession, rejected
		}

		return entity.AnonymousSession, errors.Wrap(err, "login failed")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("email", email))

	return session, nil
}
