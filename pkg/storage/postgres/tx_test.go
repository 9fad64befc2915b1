package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"relay/pkg/storage"
	"relay/pkg/storage/postgres"
)

func TestBegin(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	t.Run("nested begin is rejected", func(t *testing.T) {
		_, err := tx.(*postgres.PgSQL).Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	require.NoError(t, tx.Rollback())
}

func TestCommitRollbackOutsideTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestTxCommit(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := tx.StoreReceipts(ctx, makeReceipt("alice"))
	require.NoError(t, err)

	// invisible outside the transaction until commit
	got, err := pg.ReceiptByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, tx.Commit())

	got, err = pg.ReceiptByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestTxRollback(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	tx, err := pg.Begin(ctx)
	require.NoError(t, err)

	stored, err := tx.StoreReceipts(ctx, makeReceipt("alice"))
	require.NoError(t, err)

	require.NoError(t, tx.Rollback())

	got, err := pg.ReceiptByID(ctx, stored[0].ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	t.Run("commits on success", func(t *testing.T) {
		receipt := makeReceipt("committed")
		err := pg.WithTx(ctx, func(strg storage.AllStorage) error {
			_, err := strg.StoreReceipts(ctx, receipt)

			return err
		})
		require.NoError(t, err)

		got, err := pg.ReceiptByID(ctx, receipt.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		receipt := makeReceipt("rolled-back")
		boom := errors.New("boom")
		err := pg.WithTx(ctx, func(strg storage.AllStorage) error {
			if _, err := strg.StoreReceipts(ctx, receipt); err != nil {
				return err
			}

			return boom
		})
		require.ErrorIs(t, err, boom)

		got, err := pg.ReceiptByID(ctx, receipt.ID)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}
