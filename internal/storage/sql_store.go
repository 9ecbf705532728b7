package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const DefaultTimeout = 5 * time.Second

// Schema is applied by Migrate; it is valid for both dialects.
const Schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	store_key   TEXT PRIMARY KEY,
	store_value TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL
)`

type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, now: time.Now}
}

func Migrate(ctx context.Context, db *sql.DB) error {
	dbCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	if _, err := db.ExecContext(dbCtx, Schema); err != nil {
		return fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	dbCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	query := s.dialect.Rebind(`SELECT store_value FROM kv_store WHERE store_key = $1`)

	var value string

	err := s.db.QueryRowContext(dbCtx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("querying key %s: %w", key, err)
	}

	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	dbCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	query := s.dialect.Rebind(`
		INSERT INTO kv_store (store_key, store_value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at
	`)

	if _, err := s.db.ExecContext(dbCtx, query, key, value, s.now().UTC()); err != nil {
		return fmt.Errorf("failed to store key %s: %w", key, err)
	}

	return nil
}

func (s *SQLStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	dbCtx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	query := s.dialect.Rebind(`DELETE FROM kv_store WHERE store_key = $1`)

	for _, k := range keys {
		if _, err := s.db.ExecContext(dbCtx, query, k); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", k, err)
		}
	}

	return nil
}

// Close is a no-op; the *sql.DB belongs to whoever opened it.
func (s *SQLStore) Close() error {
	return nil
}
