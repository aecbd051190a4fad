package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the domain data,
// so a job can be inserted atomically with the rows that motivate it.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false when
	// River skipped the insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
