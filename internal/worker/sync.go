package worker

import (
	"context"
	"creditscore/internal/profile"
	"creditscore/pkg/domain"
	"creditscore/pkg/logger"
	"creditscore/pkg/serrors"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SyncWorker is a River worker that syncs the transaction history and score of
// one account per job.
//
// Jobs for invalid accounts, and jobs the explorer refuses with BAD_REQUEST or
// UNAUTHORIZED, are cancelled since retrying cannot succeed. Rate limited jobs
// are snoozed for RateLimitSnooze. Other errors are returned and retried by
// River up to the job's MaxAttempts.
type SyncWorker struct {
	river.WorkerDefaults[profile.JobArgs]

	profiles        profile.Service
	rateLimitSnooze time.Duration
}

func NewSyncWorker(profiles profile.Service, rateLimitSnooze time.Duration) *SyncWorker {
	return &SyncWorker{
		profiles:        profiles,
		rateLimitSnooze: rateLimitSnooze,
	}
}

func (w *SyncWorker) Work(ctx context.Context, job *river.Job[profile.JobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("account", job.Args.Account))

	account, err := domain.ParseAddress(job.Args.Account)
	if err != nil {
		logger.Error(ctx, "invalid account in sync job", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	res, err := w.profiles.Sync(ctx, account)
	if err != nil {
		switch {
		case errors.Is(err, serrors.ErrBadRequest), errors.Is(err, serrors.ErrUnauthorized):
			logger.Error(ctx, "sync job cannot succeed, cancelling", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		case errors.Is(err, serrors.ErrRateLimited):
			logger.Warn(ctx, "explorer rate limited sync job", zap.Duration("snooze", w.rateLimitSnooze))

			return river.JobSnooze(w.rateLimitSnooze) //nolint: wrapcheck
		}

		logger.Error(ctx, "error syncing account", zap.Error(err))

		return fmt.Errorf("could not sync account: %w", err)
	}

	logger.Info(ctx, "account sync job finished", zap.Int64("new_transactions", res.NewTransactions))

	return nil
}
