package profile_test

import (
	"creditscore/internal/profile"
	"creditscore/pkg/domain"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

var (
	account = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	pool    = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	friend  = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

func ether(v int64) decimal.Decimal {
	return decimal.NewFromInt(v).Shift(18)
}

func TestCompute(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		// incoming transfer, 10 days old
		{Account: account, From: friend, To: &account, Value: ether(2), MethodID: "0x",
			Timestamp: now.Add(-10 * 24 * time.Hour)},
		// deposit into a lending pool
		{Account: account, From: account, To: &pool, Value: ether(1), MethodID: "0xe8eda9df",
			FunctionName: "deposit(address,uint256,address,uint16)", Timestamp: now.Add(-5 * 24 * time.Hour)},
		// repayment
		{Account: account, From: account, To: &pool, Value: decimal.Zero, MethodID: "0x573ade81",
			FunctionName: "Repay(address,uint256,uint256,address)", Timestamp: now.Add(-2 * 24 * time.Hour)},
		// reverted repayment
		{Account: account, From: account, To: &pool, Value: ether(7), MethodID: "0x573ade81", IsError: true,
			FunctionName: "repay(address,uint256,uint256,address)", Timestamp: now.Add(-time.Hour)},
		// plain outgoing transfer
		{Account: account, From: account, To: &friend, Value: decimal.RequireFromString("500000000000000000"),
			MethodID: "0x", Timestamp: now.Add(-30 * time.Minute)},
	}

	got := profile.Compute(account, txs, now, 18)
	want := domain.UserProfile{
		Address:           account,
		TransactionCount:  5,
		WalletAge:         10,
		DefiInteractions:  2,
		LoanRepayments:    1,
		TransactionVolume: 3,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_Empty(t *testing.T) {
	got := profile.Compute(account, nil, time.Now(), 18)
	if diff := cmp.Diff(domain.UserProfile{Address: account}, got); diff != "" {
		t.Errorf("Compute() mismatch (-want +got):\n%s", diff)
	}
}

func TestCompute_ContractCreationIsNotDefi(t *testing.T) {
	txs := []domain.Transaction{
		{Account: account, From: account, To: nil, MethodID: "0x60806040", Timestamp: time.Now()},
	}
	got := profile.Compute(account, txs, time.Now(), 18)
	if got.DefiInteractions != 0 {
		t.Errorf("DefiInteractions = %d, want 0", got.DefiInteractions)
	}
}
