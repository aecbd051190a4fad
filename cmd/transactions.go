package main

import (
	"creditscore/internal/config"
	"creditscore/pkg/chains"
	"creditscore/pkg/domain"
	"creditscore/pkg/explorer"
	"creditscore/pkg/logger"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// printTransactions writes txs in the explorer listing format.
func printTransactions(w io.Writer, txs []domain.Transaction, loc *time.Location) {
	for _, tx := range txs {
		to := ""
		if tx.To != nil {
			to = tx.To.Hex()
		}

		_, _ = fmt.Fprintf(w, "Transaction Hash: %s\n", tx.Hash.Hex())
		_, _ = fmt.Fprintf(w, "From: %s\n", tx.From.Hex())
		_, _ = fmt.Fprintf(w, "To: %s\n", to)
		_, _ = fmt.Fprintf(w, "Amount: %s Wei\n", tx.Value.String())
		_, _ = fmt.Fprintf(w, "Timestamp: %s\n", tx.Timestamp.In(loc).Format(time.DateTime))
		_, _ = fmt.Fprintln(w, "---")
	}
}

func transactionsCommand(cfg *config.Config) *cobra.Command {
	var (
		address string
		chainID int64
		apiKey  string
	)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Lists the normal transactions of an address from the block explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			account, err := domain.ParseAddress(address)
			if err != nil {
				return err //nolint: wrapcheck
			}
			if apiKey != "" {
				cfg.Explorer.APIKey = apiKey
			}

			client, err := getExplorer(cfg, chainID)
			if err != nil {
				return err
			}

			txs, err := client.Transactions(ctx, account, explorer.ListOptions{Sort: explorer.SortAsc})
			if err != nil {
				logger.Error(ctx, "could not list transactions", zap.Error(err))

				return fmt.Errorf("could not list transactions: %w", err)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Transactions: %d\n", len(txs))
			printTransactions(out, txs, time.Local)

			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Wallet address")
	cmd.Flags().Int64Var(&chainID, "chain", chains.Polygon.ID, "Chain id of the explorer to query")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "Explorer API key, overrides the configured one")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
