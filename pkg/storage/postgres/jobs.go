package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// newJobClient returns an insert-only River client. It has no queues, so it
// never works jobs; the worker process runs its own client for that.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river insert client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a River job and reports whether it was inserted. It is false
// when River skipped the job as a duplicate of a unique job, which is how an
// account sync that is already queued gets deduplicated.
//
// On a transactional handle the job is inserted inside the transaction and
// becomes visible only when it commits.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	client := p.jobs
	if client == nil {
		db, _ := p.DB.(*sql.DB)
		var err error
		if client, err = newJobClient(db); err != nil {
			return false, err
		}
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}
