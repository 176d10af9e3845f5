package context

import (
	"context"

	"virtualcheck/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const (
	// KeySession is the key for storing the request's session.
	KeySession ContextKey = "session"

	// KeyLocale is the key for storing the negotiated page language.
	KeyLocale ContextKey = "locale"
)

// SetSession replaces the session of the current request.
// The value stored last is the one written back to cookies.
func SetSession(c echo.Context, session entity.Session) {
	c.Set(string(KeySession), session)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), session)))
}

// GetSession returns the request's session, or the anonymous session.
func GetSession(c echo.Context) entity.Session {
	if session, ok := c.Get(string(KeySession)).(entity.Session); ok {
		return session
	}

	return entity.AnonymousSession
}

// WithSession returns a new context carrying the session.
func WithSession(ctx context.Context, session entity.Session) context.Context {
	return context.WithValue(ctx, KeySession, session)
}

// GetSessionFromContext extracts the session from standard context.Context.
func GetSessionFromContext(ctx context.Context) entity.Session {
	if session, ok := ctx.Value(KeySession).(entity.Session); ok {
		return session
	}

	return entity.AnonymousSession
}

// SetLocale stores the negotiated language in echo.Context.
func SetLocale(c echo.Context, tag language.Tag) {
	c.Set(string(KeyLocale), tag)
}

// GetLocale returns the negotiated language, or language.Und when none was set.
func GetLocale(c echo.Context) language.Tag {
	if tag, ok := c.Get(string(KeyLocale)).(language.Tag); ok {
		return tag
	}

	return language.Und
}
