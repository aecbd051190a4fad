package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// Values are read from a YAML file and may be overridden by environment variables.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed to call the API cross-origin
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:"," yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"creditscore" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Chain selects the network the dashboard expects and the node used for contract reads.
	Chain struct {
		// DefaultID is the network wallets are asked to switch to
		DefaultID int64 `env:"CHAIN_DEFAULT_ID" env-default:"80001" yaml:"defaultId"`
		// RPCURL is the JSON-RPC endpoint of a node on the default network
		RPCURL string `env:"CHAIN_RPC_URL" env-default:"https://rpc-mumbai.maticvigil.com" yaml:"rpcUrl"`
	} `yaml:"chain"`

	Contract struct {
		// Address overrides the built-in credit score contract address for the default network
		Address string `env:"CONTRACT_ADDRESS" env-default:"" yaml:"address"`
	} `yaml:"contract"`

	// Explorer configures the Etherscan-compatible block explorer API.
	Explorer struct {
		// BaseURL overrides the explorer API of the default network
		BaseURL string `env:"EXPLORER_BASE_URL" env-default:"" yaml:"baseUrl"`
		// APIKey is sent with every explorer request
		APIKey string `env:"EXPLORER_API_KEY" env-default:"" yaml:"apiKey"`
		// RequestsPerSecond paces outgoing requests; zero disables pacing
		RequestsPerSecond float64 `env:"EXPLORER_REQUESTS_PER_SECOND" env-default:"5" yaml:"requestsPerSecond"`
		// Burst is the token bucket size
		Burst int `env:"EXPLORER_BURST" env-default:"1" yaml:"burst"`
		// Timeout bounds a single explorer request
		Timeout time.Duration `env:"EXPLORER_TIMEOUT" env-default:"15s" yaml:"timeout"`
		// PageSize is the number of transactions requested per page during sync
		PageSize int `env:"EXPLORER_PAGE_SIZE" env-default:"1000" yaml:"pageSize"`
	} `yaml:"explorer"`

	// Wallet configures wallet connectors and session bookkeeping.
	Wallet struct {
		// ProviderURL is the EIP-1193 JSON-RPC bridge used by the injected connector; empty disables it
		ProviderURL string `env:"WALLET_PROVIDER_URL" env-default:"" yaml:"providerUrl"`
		// WatchChainID is the network reported for watch-only addresses
		WatchChainID int64 `env:"WALLET_WATCH_CHAIN_ID" env-default:"80001" yaml:"watchChainId"`
		// SessionIdleTTL is how long an untouched wallet session is kept
		SessionIdleTTL time.Duration `env:"WALLET_SESSION_IDLE_TTL" env-default:"30m" yaml:"sessionIdleTtl"`
		// SweepSchedule is the cron spec of the idle session sweeper
		SweepSchedule string `env:"WALLET_SWEEP_SCHEDULE" env-default:"@every 1m" yaml:"sweepSchedule"`
	} `yaml:"wallet"`

	// Session configures the signed session cookie.
	Session struct {
		// CookieName is the name of the session cookie
		CookieName string `env:"SESSION_COOKIE_NAME" env-default:"cs_session" yaml:"cookieName"`
		// Secret is the HMAC key used to sign the cookie
		Secret string `env:"SESSION_SECRET" env-default:"" yaml:"secret"`
		// TTL is the cookie lifetime
		TTL time.Duration `env:"SESSION_TTL" env-default:"24h" yaml:"ttl"`
		// Secure restricts the cookie to HTTPS
		Secure bool `env:"SESSION_SECURE" env-default:"false" yaml:"secure"`
	} `yaml:"session"`

	// Worker configures the background sync workers.
	Worker struct {
		// MaxWorkers is the number of concurrent sync jobs
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a sync job is retried
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// UniquePeriod deduplicates sync jobs of the same account within this window
		UniquePeriod time.Duration `env:"WORKER_UNIQUE_PERIOD" env-default:"10m" yaml:"uniquePeriod"`
		// RateLimitSnooze delays a job after the explorer rate limited it
		RateLimitSnooze time.Duration `env:"WORKER_RATE_LIMIT_SNOOZE" env-default:"30s" yaml:"rateLimitSnooze"`
	} `yaml:"worker"`

	// Dashboard configures the server-rendered pages.
	Dashboard struct {
		// ScoreWaitTimeout is how long a page render waits for a pending score read
		ScoreWaitTimeout time.Duration `env:"DASHBOARD_SCORE_WAIT_TIMEOUT" env-default:"2s" yaml:"scoreWaitTimeout"`
		// ScoreReadTimeout bounds a single contract read
		ScoreReadTimeout time.Duration `env:"DASHBOARD_SCORE_READ_TIMEOUT" env-default:"15s" yaml:"scoreReadTimeout"`
		// CreditScoresCSV is the path of the legacy credit score table
		CreditScoresCSV string `env:"DASHBOARD_CREDIT_SCORES_CSV" env-default:"credit_scores.csv" yaml:"creditScoresCsv"`
		// HistoryLimit is the number of score snapshots shown
		HistoryLimit uint `env:"DASHBOARD_HISTORY_LIMIT" env-default:"30" yaml:"historyLimit"`
	} `yaml:"dashboard"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
