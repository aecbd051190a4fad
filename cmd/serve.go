package main

import (
	"context"
	"creditscore/internal/api"
	"creditscore/internal/api/handler/v1handler"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/internal/dashboard"
	"creditscore/internal/profile"
	"creditscore/internal/wallet"
	"creditscore/internal/worker"
	"creditscore/pkg/logger"
	"creditscore/pkg/metrics"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	opts := api.NewOptions(cfg)
	if len(opts.Session.Secret) == 0 {
		logger.Warn(ctx, "no session secret configured, sessions will not survive a restart")
		opts.Session.Secret = randomSecret(ctx)
	}

	server, err := api.NewServer(deps, opts)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", opts.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func randomSecret(ctx context.Context) []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		logger.Fatal(ctx, "could not generate session secret", zap.Error(err))
	}

	return []byte(hex.EncodeToString(b))
}

// setupWallets creates the wallet session manager. The injected connector is
// offered only when a provider bridge is configured.
func setupWallets(ctx context.Context, cfg *config.Config) (*wallet.Manager, func()) {
	var provider *rpc.Client
	if cfg.Wallet.ProviderURL != "" {
		var err error
		provider, err = wallet.DialProvider(ctx, cfg.Wallet.ProviderURL)
		if err != nil {
			logger.Fatal(ctx, "could not connect to wallet provider", zap.Error(err))
		}
	}

	factory := func() []wallet.Connector {
		connectors := make([]wallet.Connector, 0, 2)
		if provider != nil {
			connectors = append(connectors, wallet.NewInjectedConnector(provider))
		}

		return append(connectors, wallet.NewWatchConnector(cfg.Wallet.WatchChainID))
	}

	wallets, err := wallet.NewManager(factory, wallet.ManagerOptions{
		TargetChainID: cfg.Chain.DefaultID,
		IdleTTL:       cfg.Wallet.SessionIdleTTL,
		SweepSchedule: cfg.Wallet.SweepSchedule,
		Meter:         otel.Meter("creditscore/wallet"),
	})
	if err != nil {
		logger.Fatal(ctx, "could not create wallet manager", zap.Error(err))
	}
	if err := wallets.Start(ctx); err != nil {
		logger.Fatal(ctx, "could not start wallet session sweeper", zap.Error(err))
	}

	return wallets, func() {
		logger.Info(ctx, "stopping wallet session sweeper...")
		wallets.Stop()
		if provider != nil {
			provider.Close()
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the dashboard, API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := metrics.NewMeterProvider()
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			otel.SetMeterProvider(mp)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			eth, err := dialChain(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not set up chain rpc", zap.Error(err))
			}
			defer eth.Close()

			scoreOpts, err := creditscore.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid credit score contract config", zap.Error(err))
			}
			scores, err := creditscore.New(eth, scoreOpts)
			if err != nil {
				logger.Fatal(ctx, "could not create credit score reader", zap.Error(err))
			}

			explorerClient, err := getExplorer(cfg, cfg.Chain.DefaultID)
			if err != nil {
				logger.Fatal(ctx, "could not create explorer client", zap.Error(err))
			}
			profiles := profile.New(strg, explorerClient, scores, profile.NewOptions(cfg))

			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, profiles, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			wallets, stopWallets := setupWallets(ctx, cfg)
			defer stopWallets()

			dash, err := dashboard.New(wallets, scores, profiles, dashboard.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create dashboard", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Wallets:         wallets,
					Scores:          scores,
					Profiles:        profiles,
					ChainID:         cfg.Chain.DefaultID,
					CreditScoresCSV: cfg.Dashboard.CreditScoresCSV,
				},
				Dashboard: dash,
				Health:    strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
