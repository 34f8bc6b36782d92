package main

import (
	"context"
	"log/slog"
	"os"

	"freelancer/config"
	"freelancer/internal/delivery"
	"freelancer/internal/delivery/api"
	apimiddleware "freelancer/internal/delivery/api/middleware"
	"freelancer/internal/delivery/api/router/handler"
	"freelancer/internal/delivery/middleware"
	"freelancer/internal/domain/service"
	"freelancer/internal/infra/auth"
	logs "freelancer/internal/infra/log"
	"freelancer/internal/infra/metrics"
	"freelancer/internal/infra/persistence/postgres"
	"freelancer/internal/infra/sanitize"
	"freelancer/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			fx.Annotate(
				postgres.NewHealthChecker,
				fx.As(new(handler.DatabaseChecker)),
			),
		),
		injectMetrics(),
	)
}

func injectMetrics() fx.Option {
	return fx.Provide(
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(new(prometheus.Gatherer)),
			fx.As(new(prometheus.Registerer)),
		),
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(service.AuthMetrics)),
			fx.As(new(service.NotificationMetrics)),
			fx.As(new(middleware.HTTPMetrics)),
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewSystemClock,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			sanitize.NewTextSanitizer,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewIdentityService,
			impl.NewProfileService,
			impl.NewProjectService,
			impl.NewFeedbackService,
			impl.NewActionItemService,
			impl.NewRevisionService,
			impl.NewNotificationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewRateLimiters,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewProjectHandler,
			handler.NewFeedbackHandler,
			handler.NewActionItemHandler,
			handler.NewRevisionHandler,
			handler.NewNotificationHandler,
			handler.NewSystemHandler,
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
