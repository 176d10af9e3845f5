package middleware

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"virtualcheck/config"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/domain/entity"
	"virtualcheck/internal/errors"
	"virtualcheck/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SessionMiddleware loads the admin session from its cookie pair, resumes it
// against the record store and writes it back before the response header goes out.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	cfg       config.SessionConfig
	logger    *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		cfg:       params.Config.Session,
		logger:    params.Logger,
	}
}

// userSnapshot is the minimal profile read back from the user cookie.
type userSnapshot struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Handle resumes the session for the request and exports it on every response.
func (m *SessionMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		loaded := m.load(c.Request())
		result := m.sessionUC.Resume(ctx, loaded)
		logger.Debug("Session resumed", slog.String("outcome", result.Outcome.String()))

		deliverycontext.SetSession(c, result.Session)

		c.Response().Before(func() {
			if err := m.export(c.Response(), deliverycontext.GetSession(c)); err != nil {
				logger.Error("Failed to export session cookies", slog.Any("error", err))
			}
		})

		return next(c)
	}
}

func (m *SessionMiddleware) load(req *http.Request) entity.Session {
	authCookie, err := req.Cookie(m.cfg.AuthCookie)
	if err != nil || strings.TrimSpace(authCookie.Value) == "" {
		return entity.AnonymousSession
	}

	credential := entity.Credential(strings.TrimSpace(authCookie.Value))

	userCookie, err := req.Cookie(m.cfg.UserCookie)
	if err != nil {
		return entity.NewSession(credential, nil)
	}

	return entity.NewSession(credential, decodePrincipal(userCookie.Value))
}

func decodePrincipal(value string) *entity.Principal {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(value, "="))
	if err != nil || len(raw) == 0 {
		return nil
	}

	var snapshot userSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil || snapshot.ID == "" {
		return nil
	}

	return &entity.Principal{
		ID:       snapshot.ID,
		Email:    snapshot.Email,
		Name:     snapshot.Name,
		Snapshot: json.RawMessage(raw),
	}
}

func encodePrincipal(principal *entity.Principal) (string, error) {
	raw := []byte(principal.Snapshot)
	if len(raw) == 0 {
		var err error
		raw, err = json.Marshal(userSnapshot{
			ID:    principal.ID,
			Email: principal.Email,
			Name:  principal.Name,
		})
		if err != nil {
			return "", errors.Wrap(err, "encode user cookie")
		}
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// export writes both cookies for an authenticated session and expires both
// otherwise. A session whose profile cannot be encoded is expired.
func (m *SessionMiddleware) export(w http.ResponseWriter, session entity.Session) error {
	if !session.IsAuthenticated() {
		m.expire(w)

		return nil
	}

	userValue, err := encodePrincipal(session.Principal())
	if err != nil {
		m.expire(w)

		return err
	}

	maxAge := int(m.cfg.MaxAge.Seconds())
	http.SetCookie(w, m.cookie(m.cfg.AuthCookie, string(session.Credential()), maxAge))
	http.SetCookie(w, m.cookie(m.cfg.UserCookie, userValue, maxAge))

	return nil
}

func (m *SessionMiddleware) expire(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie(m.cfg.AuthCookie, "", -1))
	http.SetCookie(w, m.cookie(m.cfg.UserCookie, "", -1))
}

func (m *SessionMiddleware) cookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.cfg.IsSecure(),
		SameSite: http.SameSiteStrictMode,
	}
}
