package concurrent

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type JobFunc[T any, G any] func(ctx context.Context, job T) G

// WorkerPool. fixed number of workers draining a job queue. results are buffered up to jobQueueSize.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	group      *errgroup.Group
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

// Start. workers stop early once ctx is done, the remaining jobs are dropped.
func (wp *WorkerPool[T, G]) Start(ctx context.Context, jobFunc JobFunc[T, G]) {
	group, ctx := errgroup.WithContext(ctx)
	wp.group = group
	for i := 0; i < wp.numWorkers; i++ {
		group.Go(func() error {
			for job := range wp.jobQueue {
				if err := ctx.Err(); err != nil {
					return err
				}
				wp.results <- jobFunc(ctx, job)
			}
			return nil
		})
	}
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

// Close. no more jobs.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Wait. blocks until every worker returned, then closes the results channel.
func (wp *WorkerPool[T, G]) Wait() error {
	err := wp.group.Wait()
	close(wp.results)
	return err
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}
