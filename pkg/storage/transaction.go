package storage

import (
	"context"
	"creditscore/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// TransactionStorage persists the explorer transaction history of accounts.
type TransactionStorage interface {
	// StoreTransactions inserts transactions, skipping ones already stored for
	// the same account, and returns how many rows were inserted.
	StoreTransactions(ctx context.Context, txs []domain.Transaction) (int64, error)
	// LatestTransactionBlock returns the highest stored block number for the
	// account. The boolean is false when nothing is stored yet.
	LatestTransactionBlock(ctx context.Context, account common.Address) (uint64, bool, error)
	// AccountTransactions returns the stored transactions of the account, newest
	// first. A zero limit returns all of them.
	AccountTransactions(ctx context.Context, account common.Address, limit uint) ([]domain.Transaction, error)
}
