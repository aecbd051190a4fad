// Package polygonscan provides an explorer.Client implementation backed by the
// Etherscan-compatible Polygonscan API.
package polygonscan

import (
	"context"
	"creditscore/pkg/domain"
	"creditscore/pkg/explorer"
	"creditscore/pkg/metrics"
	"creditscore/pkg/serrors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/time/rate"
)

const providerName = "polygonscan"

// Options configure a Client.
type Options struct {
	// BaseURL is the API endpoint, e.g. https://api.polygonscan.com/api.
	BaseURL string
	// APIKey is sent as the apikey query parameter.
	APIKey string
	// RequestsPerSecond paces outgoing requests; zero or less disables pacing.
	RequestsPerSecond float64
	// Burst is the number of requests allowed to exceed the pace at once.
	Burst int
}

// Client talks to the Polygonscan account API and fulfills the explorer.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
}

// Ensure Client conforms to the explorer.Client interface at compile time.
var _ explorer.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client.
func New(httpClient *http.Client, opts Options) *Client {
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		apiKey:     opts.APIKey,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// TransactionsURL builds the txlist request URL.
func (c *Client) TransactionsURL(account common.Address, opts explorer.ListOptions) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("could not parse base URL: %w", err)
	}

	sort := opts.Sort
	if sort == "" {
		sort = explorer.SortAsc
	}
	endBlock := "latest"
	if opts.EndBlock != nil {
		endBlock = strconv.FormatUint(*opts.EndBlock, 10)
	}

	q := url.Values{}
	q.Set("module", "account")
	q.Set("action", "txlist")
	q.Set("address", account.Hex())
	q.Set("startblock", strconv.FormatUint(opts.StartBlock, 10))
	q.Set("endblock", endBlock)
	q.Set("sort", string(sort))
	if opts.Page > 0 && opts.Offset > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
		q.Set("offset", strconv.Itoa(opts.Offset))
	}
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Transactions fetches the normal transactions of account.
func (c *Client) Transactions(ctx context.Context,
	account common.Address,
	opts explorer.ListOptions) (txs []domain.Transaction, err error) {
	start := time.Now()
	defer func() {
		metrics.ExplorerRequestDuration.
			WithLabelValues(providerName, metrics.Outcome(err)).
			Observe(time.Since(start).Seconds())
	}()

	reqURL, err := c.TransactionsURL(account, opts)
	if err != nil {
		return nil, err
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUnavailable,
			"txlist failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	env, err := decodeEnvelope(b, account)
	if err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return env.transactions()
}
