package profile

import (
	"context"
	"creditscore/internal/config"
	"creditscore/internal/creditscore"
	"creditscore/pkg/chains"
	"creditscore/pkg/domain"
	"creditscore/pkg/explorer"
	"creditscore/pkg/logger"
	"creditscore/pkg/metrics"
	"creditscore/pkg/serrors"
	"creditscore/pkg/storage"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// maxResultWindow is the largest page*offset an Etherscan-compatible explorer serves.
const maxResultWindow = 10000

// Options configure syncing and job enqueueing.
type Options struct {
	// ChainID is the network scores are read and stored for.
	ChainID int64
	// NativeDecimals converts wei to whole native units.
	NativeDecimals int32
	// PageSize is the number of transactions requested per explorer page.
	PageSize int
	// MaxAttempts is the number of attempts of a sync job.
	MaxAttempts int
	// UniquePeriod deduplicates sync jobs of the same account.
	UniquePeriod time.Duration
	// HistoryLimit caps the returned score history.
	HistoryLimit uint
	// Now overrides the clock.
	Now func() time.Time
}

func NewOptions(cfg *config.Config) Options {
	decimals := int32(18)
	if chain, ok := chains.ByID(cfg.Chain.DefaultID); ok {
		decimals = chain.NativeDecimals
	}

	return Options{
		ChainID:        cfg.Chain.DefaultID,
		NativeDecimals: decimals,
		PageSize:       cfg.Explorer.PageSize,
		MaxAttempts:    cfg.Worker.MaxAttempts,
		UniquePeriod:   cfg.Worker.UniquePeriod,
		HistoryLimit:   cfg.Dashboard.HistoryLimit,
	}
}

type service struct {
	options  Options
	storage  storage.Storage
	explorer explorer.Client
	scores   creditscore.Reader
}

func New(storage storage.Storage, explorer explorer.Client, scores creditscore.Reader, options Options) Service {
	if options.Now == nil {
		options.Now = time.Now
	}
	if options.PageSize <= 0 || options.PageSize > maxResultWindow {
		options.PageSize = maxResultWindow
	}

	return &service{
		options:  options,
		storage:  storage,
		explorer: explorer,
		scores:   scores,
	}
}

func (s *service) Enqueue(ctx context.Context, account common.Address) (bool, error) {
	added, err := s.storage.AddJob(ctx, JobArgs{
		Account:         strings.ToLower(account.Hex()),
		maxAttempts:     s.options.MaxAttempts,
		uniqueJobPeriod: s.options.UniquePeriod,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue sync job: %w", err)
	}

	return added, nil
}

// fetch lists the transactions of account from block start on. Listings are
// paged within the explorer's result window; a full window is continued from
// its last block, relying on storage to drop the overlap.
func (s *service) fetch(ctx context.Context, account common.Address, start uint64) ([]domain.Transaction, error) {
	var txs []domain.Transaction
	pages := maxResultWindow / s.options.PageSize

	for {
		full := true
		for page := 1; page <= pages; page++ {
			batch, err := s.explorer.Transactions(ctx, account, explorer.ListOptions{
				StartBlock: start,
				Sort:       explorer.SortAsc,
				Page:       page,
				Offset:     s.options.PageSize,
			})
			if err != nil {
				return nil, fmt.Errorf("could not fetch transactions: %w", err)
			}
			txs = append(txs, batch...)
			if len(batch) < s.options.PageSize {
				full = false

				break
			}
		}
		if !full || len(txs) == 0 {
			return txs, nil
		}

		last := txs[len(txs)-1].BlockNumber
		if last <= start {
			logger.Warn(ctx, "transaction listing truncated", zap.Uint64("block", start))

			return txs, nil
		}
		start = last
	}
}

func (s *service) Sync(ctx context.Context, account common.Address) (*SyncResult, error) {
	latest, ok, err := s.storage.LatestTransactionBlock(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("could not get latest synced block: %w", err)
	}
	var start uint64
	if ok {
		start = latest + 1
	}

	txs, err := s.fetch(ctx, account, start)
	if err != nil {
		return nil, err
	}

	res := &SyncResult{Account: account}
	score, err := s.scores.Score(ctx, account)
	if err != nil {
		logger.Warn(ctx, "could not read credit score during sync",
			zap.String("account", account.Hex()), zap.Error(err))
		res.ScoreErr = err
	} else {
		res.Score = &score
	}

	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.StoreTransactions(ctx, txs)
		if err != nil {
			return fmt.Errorf("could not store transactions: %w", err)
		}
		res.NewTransactions = n

		if res.Score == nil {
			return nil
		}
		if _, err := tx.StoreScoreSnapshot(ctx, domain.ScoreSnapshot{
			Account: account,
			ChainID: s.options.ChainID,
			Score:   *res.Score,
		}); err != nil {
			return fmt.Errorf("could not store score snapshot: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not sync account: %w", err)
	}

	metrics.SyncedTransactions.Add(float64(res.NewTransactions))
	logger.Info(ctx, "account synced",
		zap.String("account", account.Hex()),
		zap.Int64("new_transactions", res.NewTransactions),
		zap.Uint64("start_block", start))

	return res, nil
}

func (s *service) Profile(ctx context.Context, account common.Address) (*domain.UserProfile, error) {
	txs, err := s.storage.AccountTransactions(ctx, account, 0)
	if err != nil {
		return nil, fmt.Errorf("could not get account transactions: %w", err)
	}
	latest, err := s.storage.ScoreHistory(ctx, account, s.options.ChainID, 1)
	if err != nil {
		return nil, fmt.Errorf("could not get latest score: %w", err)
	}
	if len(txs) == 0 && len(latest) == 0 {
		return nil, serrors.With(serrors.ErrNotFound, "account has not been synced")
	}

	p := Compute(account, txs, s.options.Now(), s.options.NativeDecimals)
	if len(latest) > 0 {
		p.CreditScore = latest[0].Score
	}

	return &p, nil
}

func (s *service) History(ctx context.Context, account common.Address) ([]domain.ScoreHistory, error) {
	snapshots, err := s.storage.ScoreHistory(ctx, account, s.options.ChainID, s.options.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("could not get score history: %w", err)
	}

	return domain.History(snapshots), nil
}

func (s *service) Transactions(ctx context.Context, account common.Address, limit uint) ([]domain.Transaction, error) {
	txs, err := s.storage.AccountTransactions(ctx, account, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get account transactions: %w", err)
	}

	return txs, nil
}
