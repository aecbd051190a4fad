package creditscore_test

import (
	"context"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/pkg/serrors"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

var (
	account  = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	contract = common.HexToAddress("0x00000000000000000000000000000000000000c5")
)

type callerFunc func(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error)

func (f callerFunc) CallContract(ctx context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
	return f(ctx, msg, block)
}

func uint256(v *big.Int) []byte {
	return common.LeftPadBytes(v.Bytes(), 32)
}

func returning(v int64) callerFunc {
	return func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
		return uint256(big.NewInt(v)), nil
	}
}

func newReader(t *testing.T, caller ethereum.ContractCaller) *creditscore.ContractReader {
	t.Helper()
	r, err := creditscore.New(caller, creditscore.Options{
		ChainID:     80001,
		Contract:    contract,
		ReadTimeout: time.Second,
	})
	require.NoError(t, err)

	return r
}

func TestRead_NoAddress(t *testing.T) {
	r := newReader(t, callerFunc(func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
		t.Fatal("contract must not be called without an address")

		return nil, nil
	}))

	res := r.Read(context.Background(), nil)
	require.Equal(t, creditscore.StatusIdle, res.Status)
	require.Nil(t, res.Score)
	require.False(t, res.IsLoading())
	require.False(t, res.IsError())
}

func TestRead_Success(t *testing.T) {
	var got ethereum.CallMsg
	r := newReader(t, callerFunc(func(_ context.Context, msg ethereum.CallMsg, block *big.Int) ([]byte, error) {
		got = msg
		require.Nil(t, block)

		return uint256(big.NewInt(720)), nil
	}))

	res := r.Read(context.Background(), &account)
	require.Equal(t, creditscore.StatusSuccess, res.Status)
	require.NotNil(t, res.Score)
	require.EqualValues(t, 720, *res.Score)

	require.Equal(t, contract, *got.To)
	selector := crypto.Keccak256([]byte("getCreditScore(address)"))[:4]
	require.Equal(t, selector, got.Data[:4])
	require.Equal(t, common.LeftPadBytes(account.Bytes(), 32), got.Data[4:])
}

func TestRead_ZeroScoreIsUndefined(t *testing.T) {
	res := newReader(t, returning(0)).Read(context.Background(), &account)
	require.Equal(t, creditscore.StatusSuccess, res.Status)
	require.Nil(t, res.Score)
}

func TestRead_Errors(t *testing.T) {
	tooLarge := new(big.Int).Lsh(big.NewInt(1), 70)

	tests := []struct {
		name   string
		caller callerFunc
		kind   serrors.Kind
	}{
		{
			name: "node unavailable",
			caller: func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
				return nil, errors.New("connection refused")
			},
			kind: serrors.ErrUnavailable,
		},
		{
			name: "no contract deployed",
			caller: func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
				return []byte{}, nil
			},
			kind: serrors.ErrNotFound,
		},
		{
			name: "score out of range",
			caller: func(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
				return uint256(tooLarge), nil
			},
			kind: serrors.ErrInternal,
		},
		{
			name: "timeout",
			caller: func(ctx context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
				<-ctx.Done()

				return nil, ctx.Err()
			},
			kind: serrors.ErrTimeout,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := creditscore.New(tt.caller, creditscore.Options{
				ChainID:     80001,
				Contract:    contract,
				ReadTimeout: 20 * time.Millisecond,
			})
			require.NoError(t, err)

			res := r.Read(context.Background(), &account)
			require.True(t, res.IsError())
			require.Nil(t, res.Score)
			require.ErrorIs(t, res.Err, tt.kind)
		})
	}
}

func TestStart(t *testing.T) {
	release := make(chan struct{})
	r := newReader(t, callerFunc(func(ctx context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		select {
		case <-release:
			return uint256(big.NewInt(650)), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}))

	q := r.Start(context.Background(), &account)
	require.True(t, q.For(&account))
	require.True(t, q.Result().IsLoading())

	close(release)
	res := q.Wait(context.Background())
	require.Equal(t, creditscore.StatusSuccess, res.Status)
	require.EqualValues(t, 650, *res.Score)
}

func TestStart_Cancel(t *testing.T) {
	r := newReader(t, callerFunc(func(ctx context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		<-ctx.Done()

		return nil, ctx.Err()
	}))

	q := r.Start(context.Background(), &account)
	q.Cancel()

	select {
	case <-q.Done():
	case <-time.After(time.Second):
		t.Fatal("cancelled query did not finish")
	}
	res := q.Result()
	require.True(t, res.IsError())
	require.ErrorIs(t, res.Err, context.Canceled)
}

func TestStart_WaitTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)
	r := newReader(t, callerFunc(func(ctx context.Context, _ ethereum.CallMsg, _ *big.Int) ([]byte, error) {
		<-release

		return uint256(big.NewInt(700)), nil
	}))

	q := r.Start(context.Background(), &account)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	require.True(t, q.Wait(ctx).IsLoading())
}

func TestStart_NoAddress(t *testing.T) {
	q := newReader(t, returning(700)).Start(context.Background(), nil)

	require.Nil(t, q.Address)
	require.True(t, q.For(nil))
	require.False(t, q.For(&account))
	require.Equal(t, creditscore.StatusIdle, q.Result().Status)
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chain.DefaultID = 80001
	cfg.Dashboard.ScoreReadTimeout = 5 * time.Second

	opts, err := creditscore.NewOptions(cfg)
	require.NoError(t, err)
	require.EqualValues(t, 80001, opts.ChainID)
	require.Equal(t, common.Address{}, opts.Contract)
	require.Equal(t, 5*time.Second, opts.ReadTimeout)

	cfg.Contract.Address = contract.Hex()
	opts, err = creditscore.NewOptions(cfg)
	require.NoError(t, err)
	require.Equal(t, contract, opts.Contract)

	cfg.Contract.Address = "0x123"
	_, err = creditscore.NewOptions(cfg)
	require.Error(t, err)

	cfg.Contract.Address = ""
	cfg.Chain.DefaultID = 1
	_, err = creditscore.NewOptions(cfg)
	require.Error(t, err)
}

type chainIDFunc func(ctx context.Context) (*big.Int, error)

func (f chainIDFunc) ChainID(ctx context.Context) (*big.Int, error) { return f(ctx) }

func TestVerifyChain(t *testing.T) {
	ctx := context.Background()
	on := func(id int64) chainIDFunc {
		return func(context.Context) (*big.Int, error) { return big.NewInt(id), nil }
	}

	require.NoError(t, creditscore.VerifyChain(ctx, on(80001), 80001))

	err := creditscore.VerifyChain(ctx, on(137), 80001)
	require.Error(t, err)
	require.Contains(t, err.Error(), "node is on chain 137, expected 80001 (Polygon Mumbai)")

	err = creditscore.VerifyChain(ctx, chainIDFunc(func(context.Context) (*big.Int, error) {
		return nil, errors.New("connection refused")
	}), 80001)
	require.ErrorContains(t, err, "could not read node chain id")
}
