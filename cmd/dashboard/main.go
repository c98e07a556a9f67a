package main

import (
	"context"
	"log/slog"
	"os"

	"squareone/config"
	"squareone/internal/delivery"
	"squareone/internal/delivery/http"
	httpmiddleware "squareone/internal/delivery/http/middleware"
	"squareone/internal/delivery/http/router/handler"
	deliverymiddleware "squareone/internal/delivery/middleware"
	"squareone/internal/infra/auth"
	logs "squareone/internal/infra/log"
	"squareone/internal/infra/persistence/blob"
	"squareone/internal/infra/persistence/memory"
	"squareone/internal/infra/upstream"
	"squareone/internal/usecase/impl"

	"go.uber.org/fx"
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
		blob.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			memory.NewBrandStore,
			memory.NewAdStore,
			memory.NewEventStore,
			memory.NewAuthStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			upstream.NewClient,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCatalogService,
			impl.NewAdService,
			impl.NewEventService,
			impl.NewSupportService,
			impl.NewNotificationService,
			impl.NewAnalyticsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBrandHandler,
			handler.NewAdHandler,
			handler.NewEventHandler,
			handler.NewSupportHandler,
			handler.NewNotificationHandler,
			handler.NewAnalyticsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
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
