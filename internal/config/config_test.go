package config_test

import (
	"creditscore/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.EqualValues(t, 80001, cfg.Chain.DefaultID)
	require.Equal(t, 5.0, cfg.Explorer.RequestsPerSecond)
	require.Equal(t, 30*time.Minute, cfg.Wallet.SessionIdleTTL)
	require.Equal(t, "@every 1m", cfg.Wallet.SweepSchedule)
	require.Equal(t, "cs_session", cfg.Session.CookieName)
	require.Equal(t, 24*time.Hour, cfg.Session.TTL)
	require.Equal(t, 10, cfg.Worker.MaxWorkers)
	require.Equal(t, 2*time.Second, cfg.Dashboard.ScoreWaitTimeout)
	require.EqualValues(t, 30, cfg.Dashboard.HistoryLimit)
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
chain:
  defaultId: 137
  rpcUrl: https://polygon-rpc.com
explorer:
  apiKey: from-file
  pageSize: 50
`)
	t.Setenv("EXPLORER_API_KEY", "from-env")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.EqualValues(t, 137, cfg.Chain.DefaultID)
	require.Equal(t, "https://polygon-rpc.com", cfg.Chain.RPCURL)
	require.Equal(t, "from-env", cfg.Explorer.APIKey)
	require.Equal(t, 50, cfg.Explorer.PageSize)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CHAIN_DEFAULT_ID", "137")
	t.Setenv("SESSION_SECURE", "true")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.EqualValues(t, 137, cfg.Chain.DefaultID)
	require.True(t, cfg.Session.Secure)
}
