package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkease/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key        text PRIMARY KEY,
    value      jsonb NOT NULL,
    version    bigint NOT NULL DEFAULT 1,
    updated_at timestamptz NOT NULL DEFAULT now()
)`

// PostgresStore persists entries in a single kv_entries table. Version checks
// ride on row-level predicates, so a compare-and-swap is one statement.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to ensure kv schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Connect opens a pgx pool for the configured database.
func Connect(cfg config.PostgresConfig) (*pgxpool.Pool, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.BuildDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}
	return pool, cleanup, nil
}

func (s *PostgresStore) Get(ctx context.Context, key string) (Entry, error) {
	var entry Entry
	err := s.pool.QueryRow(ctx,
		`SELECT value, version FROM kv_entries WHERE key = $1`, key,
	).Scan(&entry.Value, &entry.Version)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrKeyNotFound
		}
		return Entry{}, err
	}
	return entry, nil
}

func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    version = kv_entries.version + 1,
		    updated_at = now()`,
		key, value)
	return err
}

func (s *PostgresStore) CompareAndSwap(ctx context.Context, key string, expectedVersion int64, value []byte) error {
	if expectedVersion == NoVersion {
		tag, err := s.pool.Exec(ctx, `
			INSERT INTO kv_entries (key, value) VALUES ($1, $2)
			ON CONFLICT (key) DO NOTHING`,
			key, value)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return ErrVersionMismatch
		}
		return nil
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE kv_entries
		SET value = $2, version = version + 1, updated_at = now()
		WHERE key = $1 AND version = $3`,
		key, value, expectedVersion)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionMismatch
	}
	return nil
}
