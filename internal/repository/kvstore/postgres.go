package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"vivaha-backend/internal/logger"
)

// PostgresStore keeps documents in a single kv_documents table, one row per
// key. It is the remote-backend binding of the Store interface; business code
// is identical across memory, file and Postgres.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the backing table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS kv_documents (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_on TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("migrate kv_documents: %w", err)
	}
	return nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_documents WHERE key = $1`
	logger.DatabaseCall("SELECT", "kv_documents", "key", key)

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "key", key)
		return nil, fmt.Errorf("get document %q: %w", key, err)
	}
	return value, nil
}

func (s *PostgresStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_documents (key, value, updated_on) VALUES ($1, $2, now())
	          ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_on = now()`
	logger.DatabaseCall("UPSERT", "kv_documents", "key", key)

	_, err := s.db.ExecContext(ctx, query, key, value)
	if err != nil {
		logger.DatabaseResult("UPSERT", 0, err, "key", key)
		return fmt.Errorf("set document %q: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM kv_documents WHERE key = $1`
	logger.DatabaseCall("DELETE", "kv_documents", "key", key)

	_, err := s.db.ExecContext(ctx, query, key)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "key", key)
		return fmt.Errorf("delete document %q: %w", key, err)
	}
	return nil
}
