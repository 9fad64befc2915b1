package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// The implementation persists the job into the underlying queue backend and
// participates in a surrounding transaction when there is one, so a receipt
// row and its delivery job commit or roll back together.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. The boolean reports
	// whether a job was actually inserted: false means the queue deduplicated
	// it against an existing job with the same unique arguments.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
