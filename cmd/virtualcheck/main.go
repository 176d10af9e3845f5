package main

import (
	"context"
	"log/slog"
	"os"

	"virtualcheck/config"
	"virtualcheck/internal/delivery"
	"virtualcheck/internal/delivery/api"
	apimiddleware "virtualcheck/internal/delivery/api/middleware"
	"virtualcheck/internal/delivery/api/router/handler"
	"virtualcheck/internal/delivery/middleware"
	"virtualcheck/internal/domain/service"
	"virtualcheck/internal/infra/auth"
	logs "virtualcheck/internal/infra/log"
	"virtualcheck/internal/infra/pocketbase"
	"virtualcheck/internal/infra/pubsub"
	"virtualcheck/internal/infra/qrcode"
	"virtualcheck/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		pocketbase.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			pocketbase.NewRelationRepository,
			pocketbase.NewContactRepository,
			pocketbase.NewBusinessRepository,
			pocketbase.NewAddressRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			pocketbase.NewAuthGateway,
			auth.NewTokenInspector,
			auth.NewRelationHasher,
			newQRCodeService,
			pubsub.NewEventPublisher,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService("", cfg.Locale.Default, defaultQRCodeSize, defaultQRCodeLevel)
	}

	return qrcode.NewQRCodeService(cfg.QRCode.BaseURL, cfg.Locale.Default, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewRedemptionService,
			impl.NewContactService,
			impl.NewBusinessService,
			impl.NewRelationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewLocaleMiddleware,
			apimiddleware.NewSessionMiddleware,
			apimiddleware.NewAccessGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewRedemptionHandler,
			handler.NewContactHandler,
			handler.NewBusinessHandler,
			handler.NewRelationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
