package domain_test

import (
	"creditscore/pkg/domain"
	"creditscore/pkg/serrors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	account = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	other   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func TestParseAddress(t *testing.T) {
	addr, err := domain.ParseAddress("  0x00000000000000000000000000000000000000A1 ")
	require.NoError(t, err)
	require.Equal(t, account, addr)

	_, err = domain.ParseAddress("0x1234")
	require.ErrorIs(t, err, serrors.ErrBadRequest)

	_, err = domain.ParseAddress("")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestTransaction_Classification(t *testing.T) {
	to := other
	call := domain.Transaction{Account: account, From: account, To: &to, MethodID: "0xa9059cbb"}
	require.True(t, call.IsOutgoing())
	require.True(t, call.IsContractCall())

	transfer := domain.Transaction{Account: account, From: account, To: &to, MethodID: "0x"}
	require.False(t, transfer.IsContractCall())

	creation := domain.Transaction{Account: account, From: account, MethodID: "0x60806040"}
	require.False(t, creation.IsContractCall())

	incoming := domain.Transaction{Account: account, From: other, To: &to}
	require.False(t, incoming.IsOutgoing())
}

func TestTransaction_NativeValue(t *testing.T) {
	tx := domain.Transaction{Value: decimal.RequireFromString("1500000000000000000")}
	require.True(t, decimal.RequireFromString("1.5").Equal(tx.NativeValue(18)))
}

func TestHistory(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	h := domain.History([]domain.ScoreSnapshot{
		{Score: 650, CreatedAt: now},
		{Score: 700, CreatedAt: now.Add(24 * time.Hour)},
	})
	require.Equal(t, []domain.ScoreHistory{
		{Date: now, Score: 650},
		{Date: now.Add(24 * time.Hour), Score: 700},
	}, h)
}
