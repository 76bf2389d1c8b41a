package options

import (
	"context"
	"encoding/json"

	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const createOptionsTableSQL = `
CREATE TABLE IF NOT EXISTS store_options (
	name       TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const selectOptionsSQL = `SELECT name, value FROM store_options WHERE name = ANY($1)`

const upsertOptionSQL = `
INSERT INTO store_options (name, value, updated_at)
VALUES ($1, $2::jsonb, now())
ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

const saveRetries = 2

// PostgresBackend stores options as JSONB rows
type PostgresBackend struct {
	pool *pgxpool.Pool
}

// NewPostgresBackend creates a backend over an existing pool
func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pool: pool}
}

// EnsureSchema creates the options table if it does not exist
func (b *PostgresBackend) EnsureSchema(ctx context.Context) error {
	if _, err := b.pool.Exec(ctx, createOptionsTableSQL); err != nil {
		return errors.Wrap(err, "failed to create store_options table")
	}
	return nil
}

func (b *PostgresBackend) Load(ctx context.Context, names []string) (map[string]interface{}, error) {
	rows, err := b.pool.Query(ctx, selectOptionsSQL, names)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query options")
	}
	defer rows.Close()

	out := make(map[string]interface{}, len(names))
	for rows.Next() {
		var name string
		var raw []byte
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, errors.Wrap(err, "failed to scan option row")
		}
		var value interface{}
		if err := json.Unmarshal(raw, &value); err != nil {
			return nil, errors.Wrapf(err, "failed to decode option %s", name)
		}
		out[name] = value
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to read option rows")
	}
	return out, nil
}

// Save upserts every value in one transaction
func (b *PostgresBackend) Save(ctx context.Context, values map[string]interface{}) error {
	return helpers.WithTransactionRetry(ctx, b.pool, saveRetries, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, name := range sortedNames(values) {
			encoded, err := json.Marshal(values[name])
			if err != nil {
				return errors.Wrapf(err, "failed to encode option %s", name)
			}
			batch.Queue(upsertOptionSQL, name, string(encoded))
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return errors.Wrap(err, "failed to upsert options")
		}
		return nil
	})
}

// Ping checks the database is reachable
func (b *PostgresBackend) Ping(ctx context.Context) error {
	return errors.Wrap(b.pool.Ping(ctx), "options database unreachable")
}
