package v1handler

import (
	"context"
	"creditscore/internal/api/specs/v1specs"
	"creditscore/internal/profile"
	"creditscore/pkg/domain"
	"creditscore/pkg/serrors"

	"github.com/ethereum/go-ethereum/common"
)

// DefaultLimit is the page size of ListTransactions when none is given.
const DefaultLimit = 50

func DomainTransactionToV1Specs(tx domain.Transaction) v1specs.Transaction {
	out := v1specs.Transaction{
		Hash:         tx.Hash.Hex(),
		BlockNumber:  int64(tx.BlockNumber), //nolint: gosec
		Timestamp:    tx.Timestamp.UTC(),
		From:         tx.From.Hex(),
		Value:        tx.Value.String(),
		GasUsed:      int64(tx.GasUsed), //nolint: gosec
		IsError:      tx.IsError,
		MethodID:     tx.MethodID,
		FunctionName: tx.FunctionName,
	}
	out.To.SetToNull()
	if tx.To != nil {
		out.To.SetTo(tx.To.Hex())
	}

	return out
}

func DomainProfileToV1Specs(p *domain.UserProfile) *v1specs.UserProfile {
	return &v1specs.UserProfile{
		Address:           p.Address.Hex(),
		CreditScore:       p.CreditScore,
		TransactionCount:  p.TransactionCount,
		WalletAge:         p.WalletAge,
		DefiInteractions:  p.DefiInteractions,
		LoanRepayments:    p.LoanRepayments,
		TransactionVolume: p.TransactionVolume,
	}
}

// account resolves the path address and the profile service.
func (h *Handler) account(address string) (common.Address, profile.Service, error) {
	if h.deps.Profiles == nil {
		return common.Address{}, nil, serrors.With(serrors.ErrUnavailable, "account history is not enabled")
	}
	account, err := domain.ParseAddress(address)
	if err != nil {
		return common.Address{}, nil, err //nolint: wrapcheck
	}

	return account, h.deps.Profiles, nil
}

func (h *Handler) ListTransactions(
	ctx context.Context,
	params v1specs.ListTransactionsParams,
) ([]v1specs.Transaction, error) {
	account, profiles, err := h.account(params.Address)
	if err != nil {
		return nil, err
	}

	txs, err := profiles.Transactions(ctx, account, uint(params.Limit.Or(DefaultLimit))) //nolint: gosec
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make([]v1specs.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, DomainTransactionToV1Specs(tx))
	}

	return out, nil
}

func (h *Handler) GetProfile(ctx context.Context, params v1specs.GetProfileParams) (*v1specs.UserProfile, error) {
	account, profiles, err := h.account(params.Address)
	if err != nil {
		return nil, err
	}

	p, err := profiles.Profile(ctx, account)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainProfileToV1Specs(p), nil
}

func (h *Handler) GetHistory(ctx context.Context, params v1specs.GetHistoryParams) ([]v1specs.ScoreHistory, error) {
	account, profiles, err := h.account(params.Address)
	if err != nil {
		return nil, err
	}

	history, err := profiles.History(ctx, account)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	out := make([]v1specs.ScoreHistory, 0, len(history))
	for _, p := range history {
		out = append(out, v1specs.ScoreHistory{Date: p.Date.UTC(), Score: p.Score})
	}

	return out, nil
}

// SyncAccount schedules a background sync of an account. Enqueued is false
// when an equivalent sync is already pending.
func (h *Handler) SyncAccount(ctx context.Context, params v1specs.SyncAccountParams) (*v1specs.SyncResult, error) {
	account, profiles, err := h.account(params.Address)
	if err != nil {
		return nil, err
	}

	enqueued, err := profiles.Enqueue(ctx, account)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.SyncResult{Address: account.Hex(), Enqueued: enqueued}, nil
}
