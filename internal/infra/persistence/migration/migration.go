// Package migration applies the embedded SQL schema with golang-migrate.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"

	"freedge/config"
	"freedge/internal/domain/constants"
	"freedge/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator runs schema migrations on the application's connection pool.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// New creates a Migrator and, when auto-migrate is enabled, migrates to the latest version on start.
func New(params Params) (*Migrator, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	migrator := NewMigrator(sqlDB, params.Logger)

	if params.Config.Database != nil && params.Config.Database.AutoMigrate {
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, constants.DefaultTimeout)
				defer cancel()

				return migrator.Up(ctx)
			},
		})
	}

	return migrator, nil
}

// NewMigrator creates a Migrator for an open database.
func NewMigrator(db *sql.DB, logger *slog.Logger) *Migrator {
	return &Migrator{db: db, logger: logger}
}

// Up applies every pending migration.
func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, "up", func(instance *migrate.Migrate) error {
		return instance.Up()
	})
}

// Down reverts the most recent migration.
func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, "down", func(instance *migrate.Migrate) error {
		return instance.Steps(-1)
	})
}

// Version reports the current schema version and whether it is dirty.
func (m *Migrator) Version(ctx context.Context) (version uint, dirty bool, err error) {
	err = m.withInstance(ctx, func(instance *migrate.Migrate) error {
		version, dirty, err = instance.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}

		return err
	})

	return version, dirty, err
}

func (m *Migrator) run(ctx context.Context, direction string, step func(*migrate.Migrate) error) error {
	return m.withInstance(ctx, func(instance *migrate.Migrate) error {
		if err := step(instance); err != nil {
			if errors.Is(err, migrate.ErrNoChange) {
				m.logger.InfoContext(ctx, "schema already up to date", slog.String("direction", direction))

				return nil
			}

			return errors.Wrapf(err, "migrate %s", direction)
		}

		version, dirty, _ := instance.Version()
		m.logger.InfoContext(ctx, "schema migrated",
			slog.String("direction", direction),
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty),
		)

		return nil
	})
}

// withInstance borrows one pooled connection for golang-migrate and returns it afterwards.
func (m *Migrator) withInstance(ctx context.Context, fn func(*migrate.Migrate) error) error {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire connection for migrations")
	}

	driver, err := migratepg.WithConnection(ctx, conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()

		return errors.Wrap(err, "failed to create migration driver")
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		_ = driver.Close()

		return errors.Wrap(err, "failed to create migrator")
	}
	defer func() {
		if srcErr, dbErr := instance.Close(); srcErr != nil || dbErr != nil {
			m.logger.WarnContext(ctx, "failed to close migrator",
				slog.Any("sourceError", srcErr),
				slog.Any("databaseError", dbErr),
			)
		}
	}()

	return fn(instance)
}
