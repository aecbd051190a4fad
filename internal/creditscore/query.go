package creditscore

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// Query is a score read running in the background.
type Query struct {
	// Address is the account being read; nil for an idle query.
	Address *common.Address

	done   chan struct{}
	cancel context.CancelFunc
	result Result
}

func resolvedQuery(account *common.Address, res Result) *Query {
	q := &Query{
		Address: account,
		done:    make(chan struct{}),
		cancel:  func() {},
		result:  res,
	}
	close(q.done)

	return q
}

// Result returns the outcome, or a StatusLoading result while the read runs.
func (q *Query) Result() Result {
	select {
	case <-q.done:
		return q.result
	default:
		return Result{Status: StatusLoading}
	}
}

// Done is closed once the read has finished.
func (q *Query) Done() <-chan struct{} {
	return q.done
}

// Wait blocks until the read finishes or ctx is done and returns Result.
func (q *Query) Wait(ctx context.Context) Result {
	select {
	case <-q.done:
	case <-ctx.Done():
	}

	return q.Result()
}

// Cancel aborts the read. The query then resolves with an error result.
func (q *Query) Cancel() {
	q.cancel()
}

// For reports whether q reads account.
func (q *Query) For(account *common.Address) bool {
	if q.Address == nil || account == nil {
		return q.Address == nil && account == nil
	}

	return *q.Address == *account
}
