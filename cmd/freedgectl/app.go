package main

import (
	"context"

	"freedge/config"
	"freedge/internal/domain/constants"
	"freedge/internal/errors"
	"freedge/internal/infra/cache"
	logs "freedge/internal/infra/log"
	"freedge/internal/infra/persistence/migration"
	"freedge/internal/infra/persistence/postgres"
	"freedge/internal/usecase"
	"freedge/internal/usecase/impl"

	"go.uber.org/fx"
)

// services are the parts of the application graph the commands drive directly.
type services struct {
	importUC   usecase.ImportUsecase
	registryUC usecase.RegistryUsecase
	migrator   *migration.Migrator
}

// withServices starts the database-backed graph, runs fn, then stops it.
func withServices(ctx context.Context, fn func(ctx context.Context, svc *services) error) (err error) {
	var svc services
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			migration.New,
			postgres.NewFreedgeRepository,
			postgres.NewTransactionManager,
			cache.NewPreviewRepository,
			impl.NewImportService,
			impl.NewRegistryService,
		),
		fx.Populate(&svc.importUC, &svc.registryUC, &svc.migrator),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, constants.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		defer cancel()
		if stopErr := app.Stop(stopCtx); stopErr != nil && err == nil {
			err = errors.Wrap(stopErr, "failed to stop application")
		}
	}()

	return fn(ctx, &svc)
}
