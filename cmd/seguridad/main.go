package main

import (
	"context"
	"log/slog"
	"os"

	"seguridad/config"
	"seguridad/internal/delivery"
	"seguridad/internal/delivery/api"
	"seguridad/internal/delivery/api/router/handler"
	"seguridad/internal/domain/service"
	"seguridad/internal/infra/invitecode"
	logs "seguridad/internal/infra/log"
	"seguridad/internal/infra/persistence/postgres"
	"seguridad/internal/infra/pubsub"
	"seguridad/internal/infra/push"
	"seguridad/internal/infra/qrcode"
	"seguridad/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewLocationRepository,
			postgres.NewSafeZoneRepository,
			postgres.NewContactRepository,
			postgres.NewDeviceTokenRepository,
			postgres.NewSubscriptionRepository,
			postgres.NewInvitationRepository,
			postgres.NewAlertRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			push.NewPushService,
			pubsub.NewEventPublisher,
			invitecode.NewGenerator,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates the invitation QR renderer from configuration
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewLocationService,
			impl.NewSafeZoneService,
			impl.NewContactService,
			impl.NewDeviceTokenService,
			impl.NewSubscriptionService,
			impl.NewInvitationService,
			impl.NewAlertService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewDeviceTokenHandler,
			handler.NewLocationHandler,
			handler.NewSafeZoneHandler,
			handler.NewContactHandler,
			handler.NewAlertHandler,
			handler.NewSubscriptionHandler,
			handler.NewInvitationHandler,
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
