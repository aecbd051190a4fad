package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// UserProfile is the account summary derived from its transaction history.
type UserProfile struct {
	Address           common.Address `json:"address"`
	CreditScore       int64          `json:"creditScore"`
	TransactionCount  int64          `json:"transactionCount"`
	WalletAge         int64          `json:"walletAge"` // days since the first transaction
	DefiInteractions  int64          `json:"defiInteractions"`
	LoanRepayments    int64          `json:"loanRepayments"`
	TransactionVolume int64          `json:"transactionVolume"` // whole native units
}

// ScoreComponent is one factor of the score breakdown.
type ScoreComponent struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	Percentage int64  `json:"percentage"`
	Color      string `json:"color"`
}

// ScoreHistory is a dated score point.
type ScoreHistory struct {
	Date  time.Time `json:"date"`
	Score int64     `json:"score"`
}

// ScoreSnapshot is a persisted on-chain score reading.
type ScoreSnapshot struct {
	ID        uuid.UUID      `json:"id"`
	Account   common.Address `json:"account"`
	ChainID   int64          `json:"chainId"`
	Score     int64          `json:"score"`
	CreatedAt time.Time      `json:"createdAt"`
}

// History converts snapshots into history points, preserving order.
func History(snapshots []ScoreSnapshot) []ScoreHistory {
	out := make([]ScoreHistory, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, ScoreHistory{Date: s.CreatedAt, Score: s.Score})
	}

	return out
}
