package storage

import (
	"context"
	"creditscore/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// ScoreStorage persists on-chain score readings.
type ScoreStorage interface {
	// StoreScoreSnapshot inserts a snapshot and returns it with generated fields.
	StoreScoreSnapshot(ctx context.Context, snapshot domain.ScoreSnapshot) (*domain.ScoreSnapshot, error)
	// ScoreHistory returns up to limit of the most recent snapshots of the
	// account on the chain, oldest first. A zero limit returns all of them.
	ScoreHistory(ctx context.Context, account common.Address, chainID int64, limit uint) ([]domain.ScoreSnapshot, error)
}
