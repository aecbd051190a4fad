package postgres_test

import (
	"context"
	"creditscore/pkg/domain"
	"creditscore/pkg/storage"
	"creditscore/pkg/storage/postgres"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func walletTx(hash string, block uint64) domain.Transaction {
	return domain.Transaction{
		Account:     mockAccount,
		Hash:        common.HexToHash(hash),
		BlockNumber: block,
		From:        mockAccount,
		To:          &mockPeer,
		Value:       decimal.NewFromInt(1),
		MethodID:    "0x",
		Timestamp:   time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func storedTxCount(t *testing.T, pg *postgres.PgSQL) int {
	t.Helper()
	txs, err := pg.AccountTransactions(context.Background(), mockAccount, 0)
	require.NoError(t, err)

	return len(txs)
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_PersistsTransactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.Commit()
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	n, err := txStorage.StoreTransactions(ctx, []domain.Transaction{walletTx("0x01", 1), walletTx("0x02", 2)})
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// not visible outside the tx before commit
	require.Zero(t, storedTxCount(t, pg))

	require.NoError(t, txStorage.Commit())
	require.Equal(t, 2, storedTxCount(t, pg))

	block, ok, err := pg.LatestTransactionBlock(ctx, mockAccount)
	require.NoError(t, err)
	require.True(t, ok)
	require.EqualValues(t, 2, block)
}

func TestPgSQL_Rollback_DiscardsTransactions(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.Rollback()
	require.ErrorIs(t, err, storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	_, err = txStorage.StoreTransactions(ctx, []domain.Transaction{walletTx("0x03", 3)})
	require.NoError(t, err)
	_, err = txStorage.StoreScoreSnapshot(ctx, domain.ScoreSnapshot{Account: mockAccount, ChainID: 80001, Score: 640})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	require.Zero(t, storedTxCount(t, pg))
	history, err := pg.ScoreHistory(ctx, mockAccount, 80001, 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestPgSQL_WithTx_SyncIsAtomic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreTransactions(ctx, []domain.Transaction{walletTx("0x04", 4)}); err != nil {
			return err //nolint: wrapcheck
		}
		_, err := s.StoreScoreSnapshot(ctx, domain.ScoreSnapshot{Account: mockAccount, ChainID: 80001, Score: 700})

		return err //nolint: wrapcheck
	})
	require.NoError(t, err)
	require.Equal(t, 1, storedTxCount(t, pg))

	// a failed sync keeps neither its transactions nor its snapshot
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		_, _ = s.StoreTransactions(ctx, []domain.Transaction{walletTx("0x05", 5)})
		_, _ = s.StoreScoreSnapshot(ctx, domain.ScoreSnapshot{Account: mockAccount, ChainID: 80001, Score: 710})

		return errors.New("explorer went away")
	})
	require.Error(t, err)
	require.Equal(t, 1, storedTxCount(t, pg))

	history, err := pg.ScoreHistory(ctx, mockAccount, 80001, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.EqualValues(t, 700, history[0].Score)
}
