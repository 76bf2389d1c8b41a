package processor

import (
	"context"
	"encoding/json"

	"github.com/cyphera/store-admin/libs/go/helpers"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

const createTrackTablesSQL = `
CREATE TABLE IF NOT EXISTS track_events (
	message_id  TEXT PRIMARY KEY,
	source_arn  TEXT,
	name        TEXT NOT NULL,
	properties  JSONB NOT NULL,
	recorded_at TIMESTAMPTZ,
	received_at TIMESTAMPTZ NOT NULL
);
CREATE TABLE IF NOT EXISTS track_event_daily_counts (
	name  TEXT NOT NULL,
	day   DATE NOT NULL,
	count BIGINT NOT NULL DEFAULT 0,
	PRIMARY KEY (name, day)
)`

const insertTrackEventSQL = `
INSERT INTO track_events (message_id, source_arn, name, properties, recorded_at, received_at)
VALUES ($1, $2, $3, $4::jsonb, $5, $6)
ON CONFLICT (message_id) DO NOTHING`

const bumpDailyCountSQL = `
INSERT INTO track_event_daily_counts (name, day, count)
VALUES ($1, ($2::timestamptz AT TIME ZONE 'UTC')::date, 1)
ON CONFLICT (name, day) DO UPDATE SET count = track_event_daily_counts.count + 1`

const storeRetries = 2

// PostgresStore keeps tracking events and a per-day count of each event name
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a store over an existing pool
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the tracking tables if they do not exist
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTrackTablesSQL); err != nil {
		return errors.Wrap(err, "failed to create track_events tables")
	}
	return nil
}

// Save inserts the event and counts it once. Redelivered messages are
// ignored by message id.
func (s *PostgresStore) Save(ctx context.Context, event StoredEvent) (bool, error) {
	properties, err := json.Marshal(event.Properties)
	if err != nil {
		return false, errors.Wrapf(err, "failed to encode properties for %s", event.MessageID)
	}

	var inserted bool
	err = helpers.WithTransactionRetry(ctx, s.pool, storeRetries, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, insertTrackEventSQL,
			event.MessageID,
			helpers.StringToNullableText(event.Source),
			event.Name,
			string(properties),
			helpers.UnixToNullableTimestamptz(event.RecordedAt),
			event.ReceivedAt,
		)
		if err != nil {
			return errors.Wrap(err, "failed to insert track event")
		}
		inserted = tag.RowsAffected() == 1
		if !inserted {
			return nil
		}
		if _, err := tx.Exec(ctx, bumpDailyCountSQL, event.Name, event.ReceivedAt); err != nil {
			return errors.Wrap(err, "failed to update daily count")
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}
