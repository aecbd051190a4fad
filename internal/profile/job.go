package profile

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobArgs are the arguments of an account sync job. The account is the unique
// key, so at most one sync per account is queued within the unique period.
type JobArgs struct {
	// Account is the lowercase hex address to sync.
	Account string `json:"account" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

func (args JobArgs) Kind() string { return "SyncAccountJob" }

func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
