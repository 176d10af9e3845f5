// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/domain/service"
)

// tokenInspector reads the claims of record store tokens without verifying them.
// Only the record store holds the signing key.
type tokenInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return newTokenInspector(time.Now)
}

func newTokenInspector(now func() time.Time) *tokenInspector {
	return &tokenInspector{
		parser: jwt.NewParser(),
		now:    now,
	}
}

// IsPlausible reports whether the credential is a well-formed JWT with a
// non-empty payload whose exp, when present, is still in the future.
func (i *tokenInspector) IsPlausible(credential entity.Credential) bool {
	if credential == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(string(credential), claims); err != nil {
		return false
	}
	if len(claims) == 0 {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return false
	}
	if exp == nil {
		return true
	}

	return exp.After(i.now())
}
