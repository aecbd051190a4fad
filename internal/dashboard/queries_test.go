package dashboard

import (
	"context"
	"creditscore/internal/creditscore"
	"creditscore/internal/wallet"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

type countingCaller struct {
	calls atomic.Int32
}

func (c *countingCaller) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	c.calls.Add(1)

	return common.LeftPadBytes(big.NewInt(700).Bytes(), 32), nil
}

func newTestStore(t *testing.T) (*queryStore, *countingCaller) {
	t.Helper()
	caller := &countingCaller{}
	reader, err := creditscore.New(caller, creditscore.Options{ChainID: 80001, ReadTimeout: time.Second})
	require.NoError(t, err)

	return newQueryStore(reader), caller
}

func TestQueryStore_ReusesUntilShown(t *testing.T) {
	store, caller := newTestStore(t)
	ctx := context.Background()
	a := common.HexToAddress("0x01")

	q1 := store.get(ctx, "s", &a)
	q1.Wait(ctx)
	require.Same(t, q1, store.get(ctx, "s", &a))
	require.EqualValues(t, 1, caller.calls.Load())

	store.markShown("s", q1)
	q2 := store.get(ctx, "s", &a)
	require.NotSame(t, q1, q2)
	q2.Wait(ctx)
	require.EqualValues(t, 2, caller.calls.Load())
}

func TestQueryStore_AddressChange(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	a, b := common.HexToAddress("0x01"), common.HexToAddress("0x02")

	q1 := store.get(ctx, "s", &a)
	q2 := store.get(ctx, "s", &b)
	require.NotSame(t, q1, q2)
	require.True(t, q2.For(&b))

	idle := store.get(ctx, "s", nil)
	require.Equal(t, creditscore.StatusIdle, idle.Result().Status)
}

func TestQueryStore_RequestCancelDoesNotAbortRead(t *testing.T) {
	store, _ := newTestStore(t)
	a := common.HexToAddress("0x01")

	ctx, cancel := context.WithCancel(context.Background())
	q := store.get(ctx, "s", &a)
	cancel()

	res := q.Wait(context.Background())
	require.Equal(t, creditscore.StatusSuccess, res.Status)
	require.EqualValues(t, 700, *res.Score)
}

func TestQueryStore_Drop(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()
	a := common.HexToAddress("0x01")

	store.get(ctx, "s", &a)
	store.get(ctx, "other", &a)
	require.Equal(t, 2, store.len())

	store.drop("s")
	store.drop("missing")
	require.Equal(t, 1, store.len())
}

func TestHandler_ExpiredSessionDropsQuery(t *testing.T) {
	wallets, err := wallet.NewManager(func() []wallet.Connector { return nil }, wallet.ManagerOptions{
		TargetChainID: 80001,
		IdleTTL:       time.Hour,
		SweepSchedule: "@every 1m",
	})
	require.NoError(t, err)
	reader, err := creditscore.New(&countingCaller{}, creditscore.Options{ChainID: 80001})
	require.NoError(t, err)
	h, err := New(wallets, reader, nil, Options{ScoreWaitTimeout: time.Second})
	require.NoError(t, err)

	ctx := context.Background()
	a := common.HexToAddress("0x01")
	wallets.Session("s")
	h.queries.get(ctx, "s", &a)
	require.Equal(t, 1, h.queries.len())

	wallets.Remove(ctx, "s")
	require.Zero(t, h.queries.len())
}
