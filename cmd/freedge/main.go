package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"freedge/config"
	"freedge/internal/delivery"
	"freedge/internal/delivery/api"
	"freedge/internal/delivery/api/router/handler"
	"freedge/internal/infra/cache"
	logs "freedge/internal/infra/log"
	"freedge/internal/infra/metrics"
	"freedge/internal/infra/notification"
	"freedge/internal/infra/persistence/migration"
	"freedge/internal/infra/persistence/postgres"
	"freedge/internal/infra/pubsub"
	"freedge/internal/usecase/impl"

	"go.uber.org/fx"
	"gorm.io/gorm"
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
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			// Runs migrations on start when database.autoMigrate is set
			func(*migration.Migrator) {},
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
			migration.New,
			func(db *gorm.DB) (*sql.DB, error) { return db.DB() },
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFreedgeRepository,
			postgres.NewCheckInRepository,
			postgres.NewTransactionManager,
			cache.NewPreviewRepository,
		),
	)
}

func injectService() fx.Option {
	// The API dispatches and records replies; transport delivery runs in checkinworker
	return fx.Options(
		pubsub.Module,
		notification.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewImportService,
			impl.NewRegistryService,
			impl.NewCheckInService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewImportHandler,
			handler.NewRegistryHandler,
			handler.NewCheckInHandler,
			func(db *sql.DB, logger *slog.Logger) *handler.HealthHandler {
				return handler.NewHealthHandler(db, logger)
			},
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
