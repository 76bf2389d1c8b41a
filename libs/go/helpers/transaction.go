package helpers

import (
	"context"

	"github.com/cyphera/store-admin/libs/go/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Postgres error codes worth retrying a whole transaction for
const (
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"
)

// TxBeginner starts transactions. *pgxpool.Pool and *pgx.Conn satisfy it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction runs fn in a transaction, committing when it returns nil
// and rolling back otherwise.
func WithTransaction(ctx context.Context, db TxBeginner, fn TransactionFunc) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}

	defer func() {
		// after a commit Rollback returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(tx); err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

// WithTransactionRetry runs WithTransaction, retrying up to maxRetries times
// when Postgres aborts the transaction for a serialization failure or deadlock.
func WithTransactionRetry(ctx context.Context, db TxBeginner, maxRetries int, fn TransactionFunc) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		err = WithTransaction(ctx, db, fn)
		if err == nil || !IsRetryableTxError(err) {
			return err
		}
		if attempt < maxRetries {
			logger.Log.Warn("Transaction aborted by a concurrent writer, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
		}
	}
	return err
}

// IsRetryableTxError reports whether err is a serialization failure or deadlock
func IsRetryableTxError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}
