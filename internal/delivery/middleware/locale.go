package middleware

import (
	"log/slog"

	"virtualcheck/config"
	deliverycontext "virtualcheck/internal/delivery/context"
	"virtualcheck/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const (
	headerAcceptLanguage  = "Accept-Language"
	headerContentLanguage = "Content-Language"
)

// LocaleMiddleware picks the page language from the :lang route segment or the
// Accept-Language header.
type LocaleMiddleware struct {
	logger    *slog.Logger
	supported []language.Tag
	matcher   language.Matcher
}

// NewLocaleMiddleware builds the matcher from the configured languages.
// The default language is always the first candidate.
func NewLocaleMiddleware(logger *slog.Logger, cfg *config.Config) (*LocaleMiddleware, error) {
	defaultTag, err := language.Parse(cfg.Locale.Default)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid default locale %q", cfg.Locale.Default)
	}

	supported := []language.Tag{defaultTag}
	for _, raw := range cfg.Locale.Supported {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid supported locale %q", raw)
		}
		if tag == defaultTag {
			continue
		}
		supported = append(supported, tag)
	}

	return &LocaleMiddleware{
		logger:    logger,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Handle stores the negotiated language and answers 404 for an unsupported :lang.
func (m *LocaleMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var tag language.Tag
		if lang := c.Param("lang"); lang != "" {
			matched, ok := m.fromParam(lang)
			if !ok {
				return echo.ErrNotFound
			}
			tag = matched
		} else {
			tag = m.fromHeader(c.Request().Header.Get(headerAcceptLanguage))
		}

		deliverycontext.SetLocale(c, tag)
		c.Response().Header().Set(headerContentLanguage, tag.String())

		return next(c)
	}
}

func (m *LocaleMiddleware) fromParam(lang string) (language.Tag, bool) {
	requested, err := language.Parse(lang)
	if err != nil {
		return language.Und, false
	}

	requestedBase, _ := requested.Base()
	for _, tag := range m.supported {
		if base, _ := tag.Base(); base == requestedBase {
			return tag, true
		}
	}

	return language.Und, false
}

func (m *LocaleMiddleware) fromHeader(header string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return m.supported[0]
	}

	_, index, _ := m.matcher.Match(tags...)

	return m.supported[index]
}
