package creditscore

import (
	"context"
	"creditscore/pkg/chains"
	"fmt"
	"math/big"
)

// ChainIDReader reports the network of a node; *ethclient.Client satisfies it.
type ChainIDReader interface {
	ChainID(ctx context.Context) (*big.Int, error)
}

// VerifyChain fails when the node behind node is not on network want, so that
// scores are never read from a node of another network.
func VerifyChain(ctx context.Context, node ChainIDReader, want int64) error {
	got, err := node.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("could not read node chain id: %w", err)
	}
	if !got.IsInt64() || got.Int64() != want {
		return fmt.Errorf("node is on chain %s, expected %d (%s)", got, want, chains.Name(want))
	}

	return nil
}
