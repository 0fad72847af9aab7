package accountstore

import (
	"context"
	"embed"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies the bundled accounts schema using goose. The migration
// creates the default table name from DefaultConfig; deployments with a
// custom PostgresTable manage their own schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config) error {
	// Bridge the pgx pool to the database/sql interface goose expects.
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		_ = db.Close()
	}()

	goose.SetBaseFS(migrationsFS)
	goose.SetTableName(cfg.MigrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	return nil
}
