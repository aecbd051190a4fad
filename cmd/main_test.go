package main

import (
	"bytes"
	"context"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/pkg/domain"
	"math/big"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: nil, want: nil},
		{args: []string{"serve"}, want: nil},
		{args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{args: []string{"transactions", "--address", "0x01", "--config", "x.yml"}, want: []string{"-c", "x.yml"}},
		{args: []string{"score", "--config=y.yml"}, want: []string{"-c", "y.yml"}},
		{args: []string{"serve", "-c"}, want: nil},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), "%v", tt.args)
	}
}

func TestPrintTransactions(t *testing.T) {
	from := common.HexToAddress("0x54d3666eee6EFC5Efd0bF54C3933640BBf589a1e")
	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")

	var buf bytes.Buffer
	printTransactions(&buf, []domain.Transaction{
		{
			Hash:      common.HexToHash("0x01"),
			From:      from,
			To:        &to,
			Value:     decimal.RequireFromString("1500000000000000000"),
			Timestamp: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC),
		},
		{
			Hash:      common.HexToHash("0x02"),
			From:      from,
			Value:     decimal.Zero,
			Timestamp: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC),
		},
	}, time.UTC)

	want := "Transaction Hash: " + common.HexToHash("0x01").Hex() + "\n" +
		"From: " + from.Hex() + "\n" +
		"To: " + to.Hex() + "\n" +
		"Amount: 1500000000000000000 Wei\n" +
		"Timestamp: 2024-03-01 12:30:00\n" +
		"---\n" +
		"Transaction Hash: " + common.HexToHash("0x02").Hex() + "\n" +
		"From: " + from.Hex() + "\n" +
		"To: \n" +
		"Amount: 0 Wei\n" +
		"Timestamp: 2024-03-02 08:00:00\n" +
		"---\n"
	require.Equal(t, want, buf.String())
}

func TestPrintScore(t *testing.T) {
	account := common.HexToAddress("0x54d3666eee6EFC5Efd0bF54C3933640BBf589a1e")
	score := int64(640)

	var buf bytes.Buffer
	printScore(&buf, account, creditscore.Result{Status: creditscore.StatusSuccess, Score: &score})
	printScore(&buf, account, creditscore.Result{Status: creditscore.StatusSuccess})

	require.Equal(t,
		account.Hex()+": 640 (Good)\n"+
			account.Hex()+" has no credit score\n",
		buf.String())
}

type chainAPI struct {
	id uint64
}

func (a *chainAPI) ChainId() hexutil.Big { //nolint: revive
	return hexutil.Big(*new(big.Int).SetUint64(a.id))
}

func newNode(t *testing.T, chainID uint64) string {
	t.Helper()
	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", &chainAPI{id: chainID}))
	ts := httptest.NewServer(srv)
	t.Cleanup(func() {
		ts.Close()
		srv.Stop()
	})

	return ts.URL
}

func TestDialChain(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chain.DefaultID = 80001

	cfg.Chain.RPCURL = newNode(t, 80001)
	eth, err := dialChain(context.Background(), cfg)
	require.NoError(t, err)
	eth.Close()

	cfg.Chain.RPCURL = newNode(t, 137)
	_, err = dialChain(context.Background(), cfg)
	require.ErrorContains(t, err, "node is on chain 137, expected 80001")
}
