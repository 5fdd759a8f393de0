package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/campusmarket/marketstore/internal/logger"
)

// Postgres stores documents in a single key/value table with jsonb values.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres wraps an already-connected database handle.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// Bootstrap creates the documents table if it does not exist yet.
func (p *Postgres) Bootstrap(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS documents (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)
	`
	if _, err := p.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create documents table: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	const query = `
		SELECT value
		FROM documents
		WHERE key = $1
	`

	var value []byte
	err := p.db.GetContext(ctx, &value, query, key)

	logger.Log.Debugw("document read",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", key, err)
	}
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO documents (key, value, updated_at)
		VALUES ($1, $2::JSONB, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = NOW()
	`

	_, err := p.db.ExecContext(ctx, query, key, string(value))

	logger.Log.Debugw("document write",
		"query", strings.Join(strings.Fields(query), " "),
		"key", key,
		"size", len(value),
		"error", err,
	)

	if err != nil {
		return fmt.Errorf("store document %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	const query = `
		DELETE FROM documents
		WHERE key = $1
	`

	if _, err := p.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}
