package main

import (
	"context"
	"log/slog"
	"os"

	"eventhub/config"
	"eventhub/internal/delivery"
	"eventhub/internal/delivery/api"
	apimiddleware "eventhub/internal/delivery/api/middleware"
	"eventhub/internal/delivery/api/router/handler"
	"eventhub/internal/domain/service"
	"eventhub/internal/infra/auth"
	"eventhub/internal/infra/auth/kakao"
	"eventhub/internal/infra/i18n"
	logs "eventhub/internal/infra/log"
	"eventhub/internal/infra/notification"
	"eventhub/internal/infra/persistence/migration"
	"eventhub/internal/infra/persistence/postgres"
	"eventhub/internal/infra/pubsub"
	"eventhub/internal/infra/qrcode"
	"eventhub/internal/infra/storage"
	"eventhub/internal/usecase"
	"eventhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		migration.Module,
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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewLocationRepository,
			postgres.NewEventRepository,
			postgres.NewParticipationRepository,
			postgres.NewNotificationRepository,
			postgres.NewOAuthStateStore,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			kakao.NewOAuthService,
			i18n.NewServiceTranslator,
			qrcode.NewQRCodeServiceFromConfig,
		),
		notification.Module,
		pubsub.Module,
		storage.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewUserService,
			impl.NewEventService,
			impl.NewNotificationService,
			impl.NewPushService,
			// The in-memory publisher hands events straight to the push fanout.
			func(pushUC usecase.PushUsecase) service.NotificationDispatcher {
				return pushUC
			},
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewEventHandler,
			handler.NewNotificationHandler,
			handler.NewAuthHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
