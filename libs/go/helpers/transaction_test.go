package helpers

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records commits and rollbacks; any other method panics
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(context.Context) error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	txs      []*fakeTx
	beginErr error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func TestWithTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		db := &fakeBeginner{}
		err := WithTransaction(ctx, db, func(pgx.Tx) error { return nil })

		require.NoError(t, err)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db := &fakeBeginner{}
		err := WithTransaction(ctx, db, func(pgx.Tx) error { return errors.New("boom") })

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("begin failure", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errors.New("no connection")}
		err := WithTransaction(ctx, db, func(pgx.Tx) error { return nil })

		assert.Error(t, err)
	})
}

func TestWithTransactionRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries serialization failures", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0
		err := WithTransactionRetry(ctx, db, 2, func(pgx.Tx) error {
			calls++
			if calls < 3 {
				return &pgconn.PgError{Code: "40001"}
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.True(t, db.txs[2].committed)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0
		err := WithTransactionRetry(ctx, db, 1, func(pgx.Tx) error {
			calls++
			return &pgconn.PgError{Code: "40P01"}
		})

		assert.True(t, IsRetryableTxError(err))
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0
		err := WithTransactionRetry(ctx, db, 3, func(pgx.Tx) error {
			calls++
			return &pgconn.PgError{Code: "23505"}
		})

		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestIsRetryableTxError(t *testing.T) {
	assert.True(t, IsRetryableTxError(errors.Wrap(&pgconn.PgError{Code: "40001"}, "save")))
	assert.True(t, IsRetryableTxError(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, IsRetryableTxError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsRetryableTxError(errors.New("plain")))
	assert.False(t, IsRetryableTxError(nil))
}
