package polygonscan_test

import (
	"context"
	"creditscore/pkg/explorer"
	"creditscore/pkg/explorer/polygonscan"
	"creditscore/pkg/serrors"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.polygonscan.com/api"

var account = common.HexToAddress("0x00000000000000000000000000000000000000a1")

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *polygonscan.Client {
	return polygonscan.New(&http.Client{Transport: fn}, polygonscan.Options{
		BaseURL: baseURL,
		APIKey:  "test-key",
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

const twoTransactions = `{
  "status": "1",
  "message": "OK",
  "result": [
    {
      "blockNumber": "100",
      "timeStamp": "1700000000",
      "hash": "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060",
      "from": "0x00000000000000000000000000000000000000a1",
      "to": "0x00000000000000000000000000000000000000b2",
      "value": "1500000000000000000",
      "gasUsed": "21000",
      "isError": "0",
      "methodId": "0x",
      "functionName": "",
      "confirmations": "12"
    },
    {
      "blockNumber": "120",
      "timeStamp": "1700000600",
      "hash": "0x9a0fd4e1f4ac1c0a5b4d9f2e7b0f7f1f6e0b3a4c5d6e7f8091a2b3c4d5e6f708",
      "from": "0x00000000000000000000000000000000000000a1",
      "to": "",
      "value": "0",
      "gasUsed": "500000",
      "isError": "1",
      "methodId": "0x60806040",
      "functionName": ""
    }
  ]
}`

func TestClient_Transactions_Success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "api.polygonscan.com", r.URL.Host)
		require.Equal(t, "/api", r.URL.Path)

		q := r.URL.Query()
		require.Equal(t, "account", q.Get("module"))
		require.Equal(t, "txlist", q.Get("action"))
		require.Equal(t, account.Hex(), q.Get("address"))
		require.Equal(t, "0", q.Get("startblock"))
		require.Equal(t, "latest", q.Get("endblock"))
		require.Equal(t, "asc", q.Get("sort"))
		require.Equal(t, "test-key", q.Get("apikey"))
		require.Empty(t, q.Get("page"))

		return jsonResponse(http.StatusOK, twoTransactions), nil
	})

	txs, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.NoError(t, err)
	require.Len(t, txs, 2)

	first := txs[0]
	require.Equal(t, account, first.Account)
	require.Equal(t, uint64(100), first.BlockNumber)
	require.Equal(t, time.Unix(1700000000, 0).UTC(), first.Timestamp)
	require.Equal(t, common.HexToHash("0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"), first.Hash)
	require.NotNil(t, first.To)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000000000b2"), *first.To)
	require.True(t, decimal.RequireFromString("1500000000000000000").Equal(first.Value))
	require.Equal(t, uint64(21000), first.GasUsed)
	require.False(t, first.IsError)
	require.True(t, first.IsOutgoing())
	require.False(t, first.IsContractCall())

	second := txs[1]
	require.Nil(t, second.To)
	require.True(t, second.IsError)
	require.Equal(t, "0x60806040", second.MethodID)
}

func TestClient_Transactions_Pagination(t *testing.T) {
	end := uint64(500)
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		q := r.URL.Query()
		require.Equal(t, "101", q.Get("startblock"))
		require.Equal(t, "500", q.Get("endblock"))
		require.Equal(t, "desc", q.Get("sort"))
		require.Equal(t, "2", q.Get("page"))
		require.Equal(t, "50", q.Get("offset"))

		return jsonResponse(http.StatusOK, `{"status":"1","message":"OK","result":[]}`), nil
	})

	txs, err := c.Transactions(context.Background(), account, explorer.ListOptions{
		StartBlock: 101,
		EndBlock:   &end,
		Sort:       explorer.SortDesc,
		Page:       2,
		Offset:     50,
	})
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestClient_Transactions_NoTransactionsFound(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"0","message":"No transactions found","result":[]}`), nil
	})

	txs, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.NoError(t, err)
	require.NotNil(t, txs)
	require.Empty(t, txs)
}

func TestClient_Transactions_ErrorEnvelopes(t *testing.T) {
	tests := []struct {
		name string
		body string
		kind serrors.Kind
	}{
		{
			name: "rate limit",
			body: `{"status":"0","message":"NOTOK","result":"Max rate limit reached"}`,
			kind: serrors.ErrRateLimited,
		},
		{
			name: "invalid key",
			body: `{"status":"0","message":"NOTOK","result":"Invalid API Key"}`,
			kind: serrors.ErrUnauthorized,
		},
		{
			name: "invalid address",
			body: `{"status":"0","message":"NOTOK","result":"Error! Invalid address format"}`,
			kind: serrors.ErrBadRequest,
		},
		{
			name: "other",
			body: `{"status":"0","message":"NOTOK","result":"Query Timeout occured"}`,
			kind: serrors.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(func(r *http.Request) (*http.Response, error) {
				return jsonResponse(http.StatusOK, tt.body), nil
			})

			_, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestClient_Transactions_HTTPErrors(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, "slow down"), nil
	})
	_, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.ErrorIs(t, err, serrors.ErrRateLimited)

	c = newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusBadGateway, "upstream bad"), nil
	})
	_, err = c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")

	c = newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("dial tcp: refused")
	})
	_, err = c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestClient_Transactions_MalformedBody(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"status":"1","result":[{"blockNumber":"abc"}]}`), nil
	})

	_, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "blockNumber")
}

func TestClient_Transactions_RespectsRateLimiter(t *testing.T) {
	calls := 0
	c := polygonscan.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++

		return jsonResponse(http.StatusOK, `{"status":"1","message":"OK","result":[]}`), nil
	})}, polygonscan.Options{BaseURL: baseURL, RequestsPerSecond: 0.001, Burst: 1})

	_, err := c.Transactions(context.Background(), account, explorer.ListOptions{})
	require.NoError(t, err)

	// the single burst token is spent; the next call cannot be served before the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Transactions(ctx, account, explorer.ListOptions{})
	require.Error(t, err)
	require.Equal(t, 1, calls)
}
