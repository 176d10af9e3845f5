// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"virtualcheck/internal/domain/entity"
)

// SessionOutcome names how a loaded session was resolved for the current request.
type SessionOutcome int

const (
	// SessionAnonymous means no credential was presented, or it could not be valid.
	SessionAnonymous SessionOutcome = iota
	// SessionRenewed means the credential was refreshed with the record store.
	SessionRenewed
	// SessionCleared means the refresh failed and the session was dropped.
	// The request still proceeds, anonymously.
	SessionCleared
)

func (o SessionOutcome) String() string {
	switch o {
	case SessionRenewed:
		return "renewed"
	case SessionCleared:
		return "cleared"
	default:
		return "anonymous"
	}
}

// ResumeResult is the session to continue the request with, plus how it was reached.
type ResumeResult struct {
	Session entity.Session
	Outcome SessionOutcome
	// Err holds the refresh failure when Outcome is SessionCleared.
	Err error
}

// SessionUsecase defines the admin session lifecycle.
type SessionUsecase interface {
	// Resume validates and refreshes a session loaded from the request. It never fails.
	Resume(ctx context.Context, loaded entity.Session) ResumeResult
	// Login exchanges credentials for a new session.
	Login(ctx context.Context, email, password string) (entity.Session, error)
}
