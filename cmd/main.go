// Package main provides the CLI entrypoint for the credit score service.
// It wires subcommands (serve, migrate, transactions, score), loads
// configuration, and initializes logging.
package main

import (
	"context"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/pkg/chains"
	"creditscore/pkg/explorer/polygonscan"
	"creditscore/pkg/logger"
	"creditscore/pkg/storage/postgres"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// dialChain connects to the chain RPC node and checks that it serves the
// configured default network.
func dialChain(ctx context.Context, cfg *config.Config) (*ethclient.Client, error) {
	eth, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("could not connect to chain rpc: %w", err)
	}
	if err := creditscore.VerifyChain(ctx, eth, cfg.Chain.DefaultID); err != nil {
		eth.Close()

		return nil, err //nolint: wrapcheck
	}

	return eth, nil
}

// getExplorer creates a block explorer client for chainID. The configured base
// URL only applies to the default network.
func getExplorer(cfg *config.Config, chainID int64) (*polygonscan.Client, error) {
	chain, ok := chains.ByID(chainID)
	if !ok {
		return nil, fmt.Errorf("unsupported chain %d", chainID)
	}

	baseURL := chain.ExplorerAPI
	if cfg.Explorer.BaseURL != "" && chainID == cfg.Chain.DefaultID {
		baseURL = cfg.Explorer.BaseURL
	}

	return polygonscan.New(&http.Client{Timeout: cfg.Explorer.Timeout}, polygonscan.Options{
		BaseURL:           baseURL,
		APIKey:            cfg.Explorer.APIKey,
		RequestsPerSecond: cfg.Explorer.RequestsPerSecond,
		Burst:             cfg.Explorer.Burst,
	}), nil
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "creditscore",
		Short: "DeFi credit score dashboard",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flags.SetOutput(os.Stderr)
	configPath := flags.String("c", "config.yml", "The config file path")
	_ = flags.Parse(configArgs(os.Args[1:]))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal("could not load config file: ", err)
	}

	if err := logger.SetupWithLevel(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger: ", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		transactionsCommand(cfg),
		scoreCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// configArgs extracts the -c/--config flag from args so it can be parsed
// before cobra sees the subcommand flags.
func configArgs(args []string) []string {
	for i, arg := range args {
		switch arg {
		case "-c", "--config", "-config":
			if i+1 < len(args) {
				return []string{"-c", args[i+1]}
			}
		}
		for _, prefix := range []string{"-c=", "--config=", "-config="} {
			if len(arg) > len(prefix) && arg[:len(prefix)] == prefix {
				return []string{"-c", arg[len(prefix):]}
			}
		}
	}

	return nil
}

// loadConfig reads the config file, falling back to environment variables
// when the file does not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("config file %s not found, loading config from environment ...", path)

		return config.LoadEnv() //nolint: wrapcheck
	}

	log.Println("loading config ...")

	return config.Load(path) //nolint: wrapcheck
}
