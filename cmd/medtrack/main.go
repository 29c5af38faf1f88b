package main

import (
	"context"
	"log/slog"
	"os"

	"medtrack/config"
	"medtrack/internal/delivery"
	"medtrack/internal/delivery/api"
	"medtrack/internal/delivery/api/middleware"
	"medtrack/internal/delivery/api/router/handler"
	"medtrack/internal/geometry"
	"medtrack/internal/infra/backend"
	"medtrack/internal/infra/cache"
	logs "medtrack/internal/infra/log"
	"medtrack/internal/infra/mapcap"
	"medtrack/internal/infra/routing"
	"medtrack/internal/usecase/impl"

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
		cache.NewRouteCacheFactory,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			routing.NewProvider,
			routing.NewFetcherFactory,
			backend.NewClient,
			backend.NewTokenIssuer,
			mapcap.New,
			newReconciler,
		),
	)
}

// newReconciler builds the geometry reconciler from the geometry section
func newReconciler(cfg *config.Config) *geometry.Reconciler {
	return geometry.NewReconciler(cfg.Geometry)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewTrackingService,
			impl.NewRouteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewTrackingHandler,
			handler.NewRouteHandler,
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
