package v1handler_test

import (
	"context"
	"creditscore/internal/api/handler/v1handler"
	"creditscore/internal/api/specs/v1specs"
	mockprofile "creditscore/internal/profile/mock"
	"creditscore/pkg/domain"
	"creditscore/pkg/serrors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAccountsHandler(t *testing.T) (*v1handler.Handler, *mockprofile.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	profiles := mockprofile.NewMockService(ctrl)

	return v1handler.New(v1handler.Deps{Profiles: profiles, ChainID: mumbai}), profiles
}

func TestListTransactions(t *testing.T) {
	h, profiles := newAccountsHandler(t)

	to := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	profiles.EXPECT().Transactions(gomock.Any(), account, uint(10)).Return([]domain.Transaction{
		{
			Account:     account,
			Hash:        common.HexToHash("0x01"),
			BlockNumber: 42,
			From:        account,
			To:          &to,
			Value:       decimal.RequireFromString("1000000000000000000"),
			GasUsed:     21000,
			MethodID:    "0x",
			Timestamp:   ts,
		},
		{
			Account:     account,
			Hash:        common.HexToHash("0x02"),
			BlockNumber: 41,
			From:        account,
			Value:       decimal.Zero,
			IsError:     true,
			Timestamp:   ts.Add(-time.Hour),
		},
	}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/transactions?limit=10", nil))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	txs := decode[[]map[string]any](t, rec)
	require.Len(t, txs, 2)
	require.Equal(t, common.HexToHash("0x01").Hex(), txs[0]["hash"])
	require.EqualValues(t, 42, txs[0]["blockNumber"])
	require.Equal(t, "2024-03-01T12:00:00Z", txs[0]["timestamp"])
	require.Equal(t, to.Hex(), txs[0]["to"])
	require.Equal(t, "1000000000000000000", txs[0]["value"])
	require.Nil(t, txs[1]["to"])
	require.Equal(t, true, txs[1]["isError"])
}

func TestListTransactions_DefaultLimit(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	profiles.EXPECT().Transactions(gomock.Any(), account, uint(v1handler.DefaultLimit)).Return(nil, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/transactions", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestListTransactions_InvalidLimit(t *testing.T) {
	h, _ := newAccountsHandler(t)

	for _, limit := range []string{"0", "-1", "abc", "1001"} {
		rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/transactions?limit="+limit, nil))
		requireError(t, rec, http.StatusBadRequest, serrors.ErrBadRequest)
	}
}

func TestGetProfile(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	profiles.EXPECT().Profile(gomock.Any(), account).Return(&domain.UserProfile{
		Address:           account,
		CreditScore:       720,
		TransactionCount:  12,
		WalletAge:         30,
		DefiInteractions:  4,
		LoanRepayments:    1,
		TransactionVolume: 3,
	}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/profile", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"address": "0x8ba1f109551bD432803012645Ac136ddd64DBA72",
		"creditScore": 720,
		"transactionCount": 12,
		"walletAge": 30,
		"defiInteractions": 4,
		"loanRepayments": 1,
		"transactionVolume": 3
	}`, rec.Body.String())
}

func TestGetProfile_NotSynced(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	profiles.EXPECT().Profile(gomock.Any(), account).
		Return(nil, serrors.With(serrors.ErrNotFound, "account has not been synced"))

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/profile", nil))
	requireError(t, rec, http.StatusNotFound, serrors.ErrNotFound)
}

func TestGetHistory(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	profiles.EXPECT().History(gomock.Any(), account).Return([]domain.ScoreHistory{
		{Date: day, Score: 690},
		{Date: day.Add(24 * time.Hour), Score: 720},
	}, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/history", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[
		{"date": "2024-03-01T00:00:00Z", "score": 690},
		{"date": "2024-03-02T00:00:00Z", "score": 720}
	]`, rec.Body.String())
}

func TestSyncAccount(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	profiles.EXPECT().Enqueue(gomock.Any(), account).Return(true, nil)

	rec := serve(t, h, httptest.NewRequest(http.MethodPost, "/v1/accounts/"+account.Hex()+"/sync", nil))
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{"address":"0x8ba1f109551bD432803012645Ac136ddd64DBA72","enqueued":true}`, rec.Body.String())
}

func TestAccounts_Disabled(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/v1/accounts/"+account.Hex()+"/profile", nil))
	requireError(t, rec, http.StatusServiceUnavailable, serrors.ErrUnavailable)
}

func TestListTransactions_DirectUnsetLimit(t *testing.T) {
	h, profiles := newAccountsHandler(t)
	profiles.EXPECT().Transactions(gomock.Any(), account, uint(v1handler.DefaultLimit)).Return(nil, nil)

	txs, err := h.ListTransactions(context.Background(), v1specs.ListTransactionsParams{Address: account.Hex()})
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestDomainTransactionToV1Specs(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	out := v1handler.DomainTransactionToV1Specs(domain.Transaction{
		Hash:         common.HexToHash("0x03"),
		BlockNumber:  7,
		From:         account,
		Value:        decimal.NewFromInt(5),
		GasUsed:      21000,
		MethodID:     "0xa9059cbb",
		FunctionName: "transfer(address,uint256)",
		Timestamp:    ts,
	})

	require.True(t, out.To.IsNull())
	require.Equal(t, time.UTC, out.Timestamp.Location())
	require.True(t, out.Timestamp.Equal(ts))
	require.Equal(t, "5", out.Value)
	require.EqualValues(t, 21000, out.GasUsed)
	require.Equal(t, "transfer(address,uint256)", out.FunctionName)
}
