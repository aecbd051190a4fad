// Package explorer defines the block explorer abstraction used to fetch the
// transaction history of a wallet.
package explorer

import (
	"context"
	"creditscore/pkg/domain"

	"github.com/ethereum/go-ethereum/common"
)

// Sort is the block ordering of a transaction listing.
type Sort string

const (
	// SortAsc lists oldest transactions first.
	SortAsc Sort = "asc"
	// SortDesc lists newest transactions first.
	SortDesc Sort = "desc"
)

// ListOptions narrows a transaction listing.
type ListOptions struct {
	// StartBlock is the first block to include.
	StartBlock uint64
	// EndBlock is the last block to include; nil means the latest block.
	EndBlock *uint64
	// Sort defaults to SortAsc.
	Sort Sort
	// Page and Offset paginate the result when both are positive.
	Page   int
	Offset int
}

// Client lists the normal transactions of an account.
//
//go:generate mockgen -package mockexplorer -source=interface.go -destination=mock/mockexplorer.go *
type Client interface {
	// Transactions returns the transactions touching account. An account
	// without transactions yields an empty slice and no error.
	Transactions(ctx context.Context, account common.Address, opts ListOptions) ([]domain.Transaction, error)
}
