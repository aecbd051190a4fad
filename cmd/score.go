package main

import (
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/internal/dashboard"
	"creditscore/pkg/domain"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

func printScore(w io.Writer, account common.Address, res creditscore.Result) {
	if res.Score == nil {
		_, _ = fmt.Fprintf(w, "%s has no credit score\n", account.Hex())

		return
	}

	_, _ = fmt.Fprintf(w, "%s: %d (%s)\n", account.Hex(), *res.Score, dashboard.Label(*res.Score))
}

func scoreCommand(cfg *config.Config) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Reads the on-chain credit score of an address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			account, err := domain.ParseAddress(address)
			if err != nil {
				return err //nolint: wrapcheck
			}

			opts, err := creditscore.NewOptions(cfg)
			if err != nil {
				return err //nolint: wrapcheck
			}
			eth, err := dialChain(ctx, cfg)
			if err != nil {
				return err
			}
			defer eth.Close()

			reader, err := creditscore.New(eth, opts)
			if err != nil {
				return err //nolint: wrapcheck
			}

			res := reader.Read(ctx, &account)
			if res.IsError() {
				return res.Err
			}
			printScore(cmd.OutOrStdout(), account, res)

			return nil
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Wallet address")
	_ = cmd.MarkFlagRequired("address")

	return cmd
}
