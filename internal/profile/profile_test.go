package profile_test

import (
	"context"
	mockcreditscore "creditscore/internal/creditscore/mock"
	"creditscore/internal/profile"
	"creditscore/pkg/domain"
	"creditscore/pkg/explorer"
	mockexplorer "creditscore/pkg/explorer/mock"
	"creditscore/pkg/serrors"
	"creditscore/pkg/storage"
	mockstorage "creditscore/pkg/storage/mock"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type deps struct {
	storage  *mockstorage.MockStorage
	tx       *mockstorage.MockAllStorage
	explorer *mockexplorer.MockClient
	scores   *mockcreditscore.MockReader
}

func newService(t *testing.T, opts profile.Options) (profile.Service, deps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := deps{
		storage:  mockstorage.NewMockStorage(ctrl),
		tx:       mockstorage.NewMockAllStorage(ctrl),
		explorer: mockexplorer.NewMockClient(ctrl),
		scores:   mockcreditscore.NewMockReader(ctrl),
	}
	if opts.ChainID == 0 {
		opts.ChainID = 80001
	}
	if opts.NativeDecimals == 0 {
		opts.NativeDecimals = 18
	}

	return profile.New(d.storage, d.explorer, d.scores, opts), d
}

func (d deps) expectTx() {
	d.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(d.tx)
		})
}

func txAt(block uint64) domain.Transaction {
	return domain.Transaction{
		Account:     account,
		Hash:        common.BigToHash(new(big.Int).SetUint64(block)),
		BlockNumber: block,
		From:        friend,
		To:          &account,
		MethodID:    "0x",
	}
}

func TestEnqueue(t *testing.T) {
	svc, d := newService(t, profile.Options{MaxAttempts: 3, UniquePeriod: time.Minute})

	d.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			job, ok := args.(profile.JobArgs)
			require.True(t, ok)
			require.Equal(t, "0x8ba1f109551bd432803012645ac136ddd64dba72", job.Account)
			require.Equal(t, "SyncAccountJob", job.Kind())

			opts := job.InsertOpts()
			require.Equal(t, 3, opts.MaxAttempts)
			require.True(t, opts.UniqueOpts.ByArgs)
			require.Equal(t, time.Minute, opts.UniqueOpts.ByPeriod)

			return false, nil
		})

	added, err := svc.Enqueue(context.Background(), account)
	require.NoError(t, err)
	require.False(t, added)
}

func TestSync_Incremental(t *testing.T) {
	svc, d := newService(t, profile.Options{PageSize: 2})
	ctx := context.Background()

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(99), true, nil)
	gomock.InOrder(
		d.explorer.EXPECT().Transactions(gomock.Any(), account, explorer.ListOptions{
			StartBlock: 100, Sort: explorer.SortAsc, Page: 1, Offset: 2,
		}).Return([]domain.Transaction{txAt(100), txAt(101)}, nil),
		d.explorer.EXPECT().Transactions(gomock.Any(), account, explorer.ListOptions{
			StartBlock: 100, Sort: explorer.SortAsc, Page: 2, Offset: 2,
		}).Return([]domain.Transaction{txAt(105)}, nil),
	)
	d.scores.EXPECT().Score(gomock.Any(), account).Return(int64(720), nil)
	d.expectTx()
	d.tx.EXPECT().StoreTransactions(gomock.Any(), gomock.Len(3)).Return(int64(3), nil)
	d.tx.EXPECT().StoreScoreSnapshot(gomock.Any(), domain.ScoreSnapshot{
		Account: account, ChainID: 80001, Score: 720,
	}).Return(&domain.ScoreSnapshot{}, nil)

	res, err := svc.Sync(ctx, account)
	require.NoError(t, err)
	require.EqualValues(t, 3, res.NewTransactions)
	require.EqualValues(t, 720, *res.Score)
	require.NoError(t, res.ScoreErr)
}

func TestSync_FirstRunWithoutTransactions(t *testing.T) {
	svc, d := newService(t, profile.Options{PageSize: 100})

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(0), false, nil)
	d.explorer.EXPECT().Transactions(gomock.Any(), account, explorer.ListOptions{
		StartBlock: 0, Sort: explorer.SortAsc, Page: 1, Offset: 100,
	}).Return([]domain.Transaction{}, nil)
	d.scores.EXPECT().Score(gomock.Any(), account).Return(int64(0), nil)
	d.expectTx()
	d.tx.EXPECT().StoreTransactions(gomock.Any(), gomock.Len(0)).Return(int64(0), nil)
	d.tx.EXPECT().StoreScoreSnapshot(gomock.Any(), gomock.Any()).Return(&domain.ScoreSnapshot{}, nil)

	res, err := svc.Sync(context.Background(), account)
	require.NoError(t, err)
	require.Zero(t, res.NewTransactions)
}

func TestSync_ScoreFailureIsNotFatal(t *testing.T) {
	svc, d := newService(t, profile.Options{PageSize: 10})

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(0), false, nil)
	d.explorer.EXPECT().Transactions(gomock.Any(), account, gomock.Any()).
		Return([]domain.Transaction{txAt(1)}, nil)
	d.scores.EXPECT().Score(gomock.Any(), account).
		Return(int64(0), serrors.With(serrors.ErrUnavailable, "node down"))
	d.expectTx()
	d.tx.EXPECT().StoreTransactions(gomock.Any(), gomock.Len(1)).Return(int64(1), nil)

	res, err := svc.Sync(context.Background(), account)
	require.NoError(t, err)
	require.Nil(t, res.Score)
	require.ErrorIs(t, res.ScoreErr, serrors.ErrUnavailable)
}

func TestSync_ExplorerError(t *testing.T) {
	svc, d := newService(t, profile.Options{PageSize: 10})

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(0), false, nil)
	d.explorer.EXPECT().Transactions(gomock.Any(), account, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrRateLimited, "Max rate limit reached"))

	_, err := svc.Sync(context.Background(), account)
	require.ErrorIs(t, err, serrors.ErrRateLimited)
}

func TestSync_StorageError(t *testing.T) {
	svc, d := newService(t, profile.Options{PageSize: 10})

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(0), false, nil)
	d.explorer.EXPECT().Transactions(gomock.Any(), account, gomock.Any()).Return([]domain.Transaction{}, nil)
	d.scores.EXPECT().Score(gomock.Any(), account).Return(int64(700), nil)
	d.expectTx()
	d.tx.EXPECT().StoreTransactions(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db down"))

	_, err := svc.Sync(context.Background(), account)
	require.ErrorContains(t, err, "db down")
}

func TestSync_ContinuesPastResultWindow(t *testing.T) {
	// 10000 / 5000 = 2 pages per window
	svc, d := newService(t, profile.Options{PageSize: 5000})

	full := func(block uint64) []domain.Transaction {
		txs := make([]domain.Transaction, 5000)
		for i := range txs {
			txs[i] = txAt(block)
		}

		return txs
	}

	d.storage.EXPECT().LatestTransactionBlock(gomock.Any(), account).Return(uint64(0), false, nil)
	gomock.InOrder(
		d.explorer.EXPECT().Transactions(gomock.Any(), account,
			explorer.ListOptions{StartBlock: 0, Sort: explorer.SortAsc, Page: 1, Offset: 5000}).Return(full(10), nil),
		d.explorer.EXPECT().Transactions(gomock.Any(), account,
			explorer.ListOptions{StartBlock: 0, Sort: explorer.SortAsc, Page: 2, Offset: 5000}).Return(full(20), nil),
		d.explorer.EXPECT().Transactions(gomock.Any(), account,
			explorer.ListOptions{StartBlock: 20, Sort: explorer.SortAsc, Page: 1, Offset: 5000}).
			Return([]domain.Transaction{txAt(21)}, nil),
	)
	d.scores.EXPECT().Score(gomock.Any(), account).Return(int64(700), nil)
	d.expectTx()
	d.tx.EXPECT().StoreTransactions(gomock.Any(), gomock.Len(10001)).Return(int64(3), nil)
	d.tx.EXPECT().StoreScoreSnapshot(gomock.Any(), gomock.Any()).Return(&domain.ScoreSnapshot{}, nil)

	_, err := svc.Sync(context.Background(), account)
	require.NoError(t, err)
}

func TestProfile(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	svc, d := newService(t, profile.Options{Now: func() time.Time { return now }})

	first := txAt(1)
	first.Timestamp = now.Add(-48 * time.Hour)
	d.storage.EXPECT().AccountTransactions(gomock.Any(), account, uint(0)).Return([]domain.Transaction{first}, nil)
	d.storage.EXPECT().ScoreHistory(gomock.Any(), account, int64(80001), uint(1)).
		Return([]domain.ScoreSnapshot{{Score: 710}}, nil)

	p, err := svc.Profile(context.Background(), account)
	require.NoError(t, err)
	require.EqualValues(t, 710, p.CreditScore)
	require.EqualValues(t, 1, p.TransactionCount)
	require.EqualValues(t, 2, p.WalletAge)
}

func TestProfile_NotSynced(t *testing.T) {
	svc, d := newService(t, profile.Options{})

	d.storage.EXPECT().AccountTransactions(gomock.Any(), account, uint(0)).Return(nil, nil)
	d.storage.EXPECT().ScoreHistory(gomock.Any(), account, int64(80001), uint(1)).Return(nil, nil)

	_, err := svc.Profile(context.Background(), account)
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestHistory(t *testing.T) {
	svc, d := newService(t, profile.Options{HistoryLimit: 30})
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	d.storage.EXPECT().ScoreHistory(gomock.Any(), account, int64(80001), uint(30)).Return([]domain.ScoreSnapshot{
		{Score: 650, CreatedAt: day},
		{Score: 700, CreatedAt: day.Add(24 * time.Hour)},
	}, nil)

	history, err := svc.History(context.Background(), account)
	require.NoError(t, err)
	require.Equal(t, []domain.ScoreHistory{
		{Date: day, Score: 650},
		{Date: day.Add(24 * time.Hour), Score: 700},
	}, history)
}

func TestTransactions(t *testing.T) {
	svc, d := newService(t, profile.Options{})

	d.storage.EXPECT().AccountTransactions(gomock.Any(), account, uint(5)).Return([]domain.Transaction{txAt(3)}, nil)

	txs, err := svc.Transactions(context.Background(), account, 5)
	require.NoError(t, err)
	require.Len(t, txs, 1)
}
