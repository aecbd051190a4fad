// Package profile keeps the stored transaction history and score snapshots of
// accounts up to date and derives their UserProfile.
package profile

import (
	"context"
	"creditscore/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

//go:generate mockgen -package mockprofile -source=interface.go -destination=mock/mockprofile.go *
type Service interface {
	// Enqueue schedules a background sync of account. It reports false when an
	// equivalent sync is already queued or ran recently.
	Enqueue(ctx context.Context, account common.Address) (bool, error)
	// Sync fetches new transactions of account, reads its score and stores both.
	Sync(ctx context.Context, account common.Address) (*SyncResult, error)
	// Profile derives the profile of a synced account.
	Profile(ctx context.Context, account common.Address) (*domain.UserProfile, error)
	// History returns the stored score history of account, oldest first.
	History(ctx context.Context, account common.Address) ([]domain.ScoreHistory, error)
	// Transactions returns stored transactions of account, newest first.
	Transactions(ctx context.Context, account common.Address, limit uint) ([]domain.Transaction, error)
}

// SyncResult describes a completed sync.
type SyncResult struct {
	Account common.Address
	// NewTransactions is the number of transactions stored by this sync.
	NewTransactions int64
	// Score is the score read during the sync, if the read succeeded.
	Score *int64
	// ScoreErr is the failure of the score read, if any.
	ScoreErr error
}
