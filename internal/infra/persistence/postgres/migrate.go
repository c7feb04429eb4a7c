package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"credkeeper/internal/errors"
	"credkeeper/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

const migrationsDir = "."

// runMigrations applies the embedded goose migrations to the primary database.
func runMigrations(ctx context.Context, sqlDB *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return errors.Wrap(err, "failed to apply migrations")
	}

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	logger.Info("Database schema is up to date", slog.Int64("version", version))

	return nil
}
