// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"time"

	"virtualcheck/config"
	"virtualcheck/internal/delivery/api/middleware"
	"virtualcheck/internal/delivery/api/router/handler"
	"virtualcheck/internal/domain/entity"
	domainerrors "virtualcheck/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	defaultSubmitRate      = 0.2
	defaultSubmitBurst     = 5
	defaultSubmitExpiresIn = 10 * time.Minute
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RedemptionHandler *handler.RedemptionHandler
	ContactHandler    *handler.ContactHandler
	BusinessHandler   *handler.BusinessHandler
	RelationHandler   *handler.RelationHandler
	AccessGuard       *middleware.AccessGuard
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	redemptionHandler *handler.RedemptionHandler
	contactHandler    *handler.ContactHandler
	businessHandler   *handler.BusinessHandler
	relationHandler   *handler.RelationHandler
	accessGuard       *middleware.AccessGuard
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		redemptionHandler: params.RedemptionHandler,
		contactHandler:    params.ContactHandler,
		businessHandler:   params.BusinessHandler,
		relationHandler:   params.RelationHandler,
		accessGuard:       params.AccessGuard,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the routes for the application. Every page is
// mounted both at the root and under a /:lang prefix.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	submitLimiter := r.submitRateLimiter()

	r.registerSite(e.Group(""), submitLimiter)
	r.registerSite(e.Group("/:lang"), submitLimiter)
}

func (r *router) registerSite(site *echo.Group, submitLimiter echo.MiddlewareFunc) {
	// Public virtual check routes
	site.GET("/virtualcheck/:hash", r.redemptionHandler.Show)
	site.POST("/virtualcheck/:hash", r.redemptionHandler.Submit, submitLimiter)

	// Admin routes, all behind the access guard
	adminGroup := site.Group("/admin")
	adminGroup.Use(r.accessGuard.Protect)
	{
		adminGroup.GET("/login", r.authHandler.LoginPage)
		adminGroup.POST("/login", r.authHandler.Login)
		adminGroup.POST("/logout", r.authHandler.Logout)

		adminGroup.GET("", r.contactHandler.List)
		adminGroup.POST("/contacts/status", r.contactHandler.UpdateStatus)
	}

	for prefix, kind := range map[string]entity.BusinessKind{
		"/agencies": entity.BusinessKindAgency,
		"/stores":   entity.BusinessKindStore,
	} {
		businessGroup := adminGroup.Group(prefix)
		businessGroup.GET("", r.businessHandler.List(kind))
		businessGroup.POST("/create", r.businessHandler.Create(kind))
		businessGroup.POST("/update", r.businessHandler.Update(kind))
		businessGroup.POST("/delete", r.businessHandler.Delete(kind))
	}

	relationsGroup := adminGroup.Group("/relations")
	{
		relationsGroup.GET("", r.relationHandler.List)
		relationsGroup.POST("/create", r.relationHandler.Create)
		relationsGroup.POST("/delete", r.relationHandler.Delete)
		relationsGroup.GET("/:id/qr", r.relationHandler.QRCode)
	}
}

// submitRateLimiter limits contact submissions per client IP.
func (r *router) submitRateLimiter() echo.MiddlewareFunc {
	limit, burst, expiresIn := defaultSubmitRate, defaultSubmitBurst, defaultSubmitExpiresIn
	if cfg := r.config.Redemption; cfg != nil {
		if cfg.RateLimit > 0 {
			limit = cfg.RateLimit
		}
		if cfg.Burst > 0 {
			burst = cfg.Burst
		}
		if cfg.ExpiresIn > 0 {
			expiresIn = cfg.ExpiresIn
		}
	}

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(limit),
			Burst:     burst,
			ExpiresIn: expiresIn,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return domainerrors.ErrRateLimited
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return domainerrors.ErrRateLimited
		},
	})
}
