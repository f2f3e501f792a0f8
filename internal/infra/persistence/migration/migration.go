// Package migration applies the embedded SQL migrations with golang-migrate.
package migration

import (
	"context"
	"io/fs"
	"log/slog"

	"eventhub/config"
	"eventhub/internal/errors"
	"eventhub/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Up applies all pending migrations from source to the database behind db.
// It returns the schema version after the run.
func Up(db *gorm.DB, source fs.FS) (uint, error) {
	m, err := newMigrate(db, source)
	if err != nil {
		return 0, err
	}

	if err := errors.Ignore(m.Up(), migrate.ErrNoChange); err != nil {
		return 0, errors.Wrap(err, "migration up")
	}

	version, dirty, err := m.Version()
	if err = errors.Ignore(err, migrate.ErrNilVersion); err != nil {
		return 0, errors.Wrap(err, "read migration version")
	}
	if dirty {
		return version, errors.Errorf("database is dirty at version %d", version)
	}

	return version, nil
}

// Down rolls back the given number of migration steps.
func Down(db *gorm.DB, source fs.FS, steps int) error {
	m, err := newMigrate(db, source)
	if err != nil {
		return err
	}

	if err := errors.Ignore(m.Steps(-steps), migrate.ErrNoChange); err != nil {
		return errors.Wrap(err, "migration down")
	}

	return nil
}

func newMigrate(db *gorm.DB, source fs.FS) (*migrate.Migrate, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "migration driver init")
	}

	src, err := iofs.New(source, ".")
	if err != nil {
		return nil, errors.Wrap(err, "migration source init")
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, errors.Wrap(err, "migration init")
	}

	return m, nil
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	DB     *gorm.DB
	Logger *slog.Logger
}

// Register applies the embedded migrations on start when migration.autoMigrate is enabled.
func Register(params Params) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			version, err := Up(params.DB, migrations.FS)
			if err != nil {
				return err
			}
			params.Logger.InfoContext(ctx, "Database migrations applied", slog.Uint64("version", uint64(version)))

			return nil
		},
	})
}

// Module runs schema migrations as part of the fx start sequence.
var Module = fx.Options(
	fx.Invoke(Register),
)
