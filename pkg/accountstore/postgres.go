package accountstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/tokenize/pkg/tokenize"
)

// PostgresStore keeps one row per account. The expected schema is created by
// Migrate; see migrations/00001_create_accounts.sql.
type PostgresStore struct {
	db    *pgxpool.Pool
	table string
}

// NewPostgresStore creates a Postgres-backed account store using the default table name.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return NewPostgresStoreWithConfig(pool, DefaultConfig())
}

// NewPostgresStoreWithConfig creates a Postgres-backed account store with a custom configuration.
func NewPostgresStoreWithConfig(pool *pgxpool.Pool, cfg Config) *PostgresStore {
	return &PostgresStore{
		db:    pool,
		table: cfg.PostgresTable,
	}
}

// Create registers an account with a zero reset timestamp.
// Returns ErrAccountExists if the id is already registered.
func (s *PostgresStore) Create(ctx context.Context, accountID string) error {
	query := fmt.Sprintf(`INSERT INTO %s (id, last_token_reset) VALUES ($1, 0) ON CONFLICT (id) DO NOTHING`, s.table)
	tag, err := s.db.Exec(ctx, query, accountID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountExists
	}
	return nil
}

// Lookup resolves an account id; missing accounts yield (nil, nil).
func (s *PostgresStore) Lookup(ctx context.Context, accountID string) (tokenize.Account, error) {
	query := fmt.Sprintf(`SELECT last_token_reset FROM %s WHERE id = $1`, s.table)

	var reset int64
	if err := s.db.QueryRow(ctx, query, accountID).Scan(&reset); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return StoredAccount{ID: accountID, TokenReset: reset}, nil
}

// Invalidate revokes every token issued to the account before the given moment.
func (s *PostgresStore) Invalidate(ctx context.Context, accountID string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE %s SET last_token_reset = $2 WHERE id = $1`, s.table)
	tag, err := s.db.Exec(ctx, query, accountID, at.UnixMilli())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// Delete removes the account record.
func (s *PostgresStore) Delete(ctx context.Context, accountID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, s.table)
	_, err := s.db.Exec(ctx, query, accountID)
	return err
}
