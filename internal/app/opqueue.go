package app

import (
	"context"
	"errors"
	"sync"
)

// ErrQueueClosed is returned when an operation is submitted after Close.
var ErrQueueClosed = errors.New("operation queue is closed")

// OpQueue sequences mutating operations: jobs run one at a time in submission
// order on a single drain goroutine, so two concurrent writes can never
// interleave.
type OpQueue struct {
	mu     sync.Mutex
	closed bool
	jobs   chan opJob
	done   chan struct{}
}

type opJob struct {
	ctx    context.Context
	fn     func(context.Context) error
	result chan error
}

// NewOpQueue starts the drain goroutine. depth bounds how many operations may
// wait; further submissions block.
func NewOpQueue(depth int) *OpQueue {
	if depth <= 0 {
		depth = 16
	}
	q := &OpQueue{
		jobs: make(chan opJob, depth),
		done: make(chan struct{}),
	}
	go q.drain()
	return q
}

func (q *OpQueue) drain() {
	for job := range q.jobs {
		// An operation whose submitter already gave up is skipped, not run.
		if err := job.ctx.Err(); err != nil {
			job.result <- err
			continue
		}
		job.result <- job.fn(job.ctx)
	}
	close(q.done)
}

// Do submits fn and waits for its turn and its result. Cancelling the context
// while waiting abandons the wait, and the queued operation is skipped at
// drain time.
func (q *OpQueue) Do(ctx context.Context, fn func(context.Context) error) error {
	job := opJob{ctx: ctx, fn: fn, result: make(chan error, 1)}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrQueueClosed
	}
	q.jobs <- job
	q.mu.Unlock()

	select {
	case err := <-job.result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting work and waits for queued operations to finish.
func (q *OpQueue) Close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
	q.mu.Unlock()
	<-q.done
}
