// Package creditscore reads the credit score of an account from the
// on-chain credit score contract.
package creditscore

import (
	"context"
	"creditscore/internal/config"
	"creditscore/pkg/contracts"
	"creditscore/pkg/domain"
	"creditscore/pkg/metrics"
	"creditscore/pkg/serrors"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "creditscore/internal/creditscore"

// Status is the state of a score read.
type Status string

const (
	// StatusIdle means no read was requested because there is no address.
	StatusIdle    Status = "IDLE"
	StatusLoading Status = "LOADING"
	StatusSuccess Status = "SUCCESS"
	StatusError   Status = "ERROR"
)

// Result is the outcome of a score read. Score is nil unless the contract
// returned a non-zero score.
type Result struct {
	Status Status
	Score  *int64
	Err    error
}

func (r Result) IsLoading() bool { return r.Status == StatusLoading }

func (r Result) IsError() bool { return r.Status == StatusError }

// Reader reads credit scores.
//
//go:generate mockgen -package mockcreditscore -source=creditscore.go -destination=mock/mockcreditscore.go *
type Reader interface {
	// Read performs a single read. A nil address results in StatusIdle without
	// contacting the node.
	Read(ctx context.Context, account *common.Address) Result
	// Start performs Read in the background.
	Start(ctx context.Context, account *common.Address) *Query
	// Score returns the raw score of account.
	Score(ctx context.Context, account common.Address) (int64, error)
}

// Options configures a ContractReader.
type Options struct {
	// ChainID is the network the contract is read on.
	ChainID int64
	// Contract is the credit score contract address.
	Contract common.Address
	// ReadTimeout bounds a single contract call; zero means no bound.
	ReadTimeout time.Duration
}

// NewOptions builds Options for the configured default network. A configured
// contract address takes precedence over the built-in one.
func NewOptions(cfg *config.Config) (Options, error) {
	opts := Options{
		ChainID:     cfg.Chain.DefaultID,
		ReadTimeout: cfg.Dashboard.ScoreReadTimeout,
	}

	if cfg.Contract.Address != "" {
		addr, err := domain.ParseAddress(cfg.Contract.Address)
		if err != nil {
			return Options{}, fmt.Errorf("invalid contract address: %w", err)
		}
		opts.Contract = addr

		return opts, nil
	}

	addr, ok := contracts.CreditScoreAddress(cfg.Chain.DefaultID)
	if !ok {
		return Options{}, fmt.Errorf("no credit score contract known for chain %d", cfg.Chain.DefaultID)
	}
	opts.Contract = addr

	return opts, nil
}

// ContractReader reads scores through an Ethereum node.
type ContractReader struct {
	caller ethereum.ContractCaller
	abi    *contracts.CreditScore
	opts   Options
	tracer trace.Tracer
}

var _ Reader = (*ContractReader)(nil)

func New(caller ethereum.ContractCaller, opts Options) (*ContractReader, error) {
	abi, err := contracts.NewCreditScore()
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &ContractReader{
		caller: caller,
		abi:    abi,
		opts:   opts,
		tracer: otel.Tracer(tracerName),
	}, nil
}

func (r *ContractReader) Read(ctx context.Context, account *common.Address) Result {
	if account == nil {
		return Result{Status: StatusIdle}
	}

	score, err := r.Score(ctx, *account)
	if err != nil {
		return Result{Status: StatusError, Err: err}
	}
	if score == 0 {
		return Result{Status: StatusSuccess}
	}

	return Result{Status: StatusSuccess, Score: &score}
}

func (r *ContractReader) Start(ctx context.Context, account *common.Address) *Query {
	if account == nil {
		return resolvedQuery(nil, Result{Status: StatusIdle})
	}

	addr := *account
	ctx, cancel := context.WithCancel(ctx)
	q := &Query{
		Address: &addr,
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go func() {
		defer cancel()
		q.result = r.Read(ctx, &addr)
		close(q.done)
	}()

	return q
}

func (r *ContractReader) Score(ctx context.Context, account common.Address) (score int64, err error) {
	ctx, span := r.tracer.Start(ctx, "CreditScore.getCreditScore", trace.WithAttributes(
		attribute.String("account", account.Hex()),
		attribute.String("contract", r.opts.Contract.Hex()),
		attribute.Int64("chain_id", r.opts.ChainID),
	))
	start := time.Now()
	defer func() {
		metrics.ContractReadDuration.
			WithLabelValues(contracts.GetCreditScoreMethod, metrics.Outcome(err)).
			Observe(time.Since(start).Seconds())
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if r.opts.ReadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.ReadTimeout)
		defer cancel()
	}

	data, err := r.abi.PackGetCreditScore(account)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not encode score call")
	}

	contract := r.opts.Contract
	out, err := r.caller.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, serrors.Wrap(serrors.ErrTimeout, err, "score read timed out")
		}
		if errors.Is(err, context.Canceled) {
			return 0, fmt.Errorf("score read cancelled: %w", err)
		}

		return 0, serrors.Wrap(serrors.ErrUnavailable, err, "could not read credit score")
	}

	value, err := r.abi.UnpackGetCreditScore(out)
	if errors.Is(err, contracts.ErrEmptyResult) {
		return 0, serrors.Wrap(serrors.ErrNotFound, err,
			"no credit score contract at %s on chain %d", contract.Hex(), r.opts.ChainID)
	}
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInternal, err, "could not decode credit score")
	}
	if !value.IsInt64() {
		return 0, serrors.With(serrors.ErrInternal, "credit score %s is out of range", value.String())
	}

	return value.Int64(), nil
}
