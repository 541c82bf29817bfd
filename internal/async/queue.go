package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Job is the smallest useful unit. Extend as needed later (profile, trace, retry, etc).
type Job struct {
	FileID      uuid.UUID
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

var ErrQueueClosed = errors.New("queue closed")

// ProcessFunc handles one dequeued file.
type ProcessFunc func(ctx context.Context, fileID uuid.UUID) error

// WorkerQueue is a bounded in-process queue draining into a fixed pool of
// workers. Extraction is CPU- and subprocess-heavy, so the pool caps how many
// tesseract runs happen at once.
type WorkerQueue struct {
	jobs    chan Job
	process ProcessFunc
	logger  *slog.Logger

	wg       sync.WaitGroup
	closeOne sync.Once
	closed   chan struct{}
}

func NewWorkerQueue(ctx context.Context, workers, buffer int, process ProcessFunc, logger *slog.Logger) *WorkerQueue {
	if logger == nil {
		logger = slog.Default()
	}
	if workers <= 0 {
		workers = 2
	}
	if buffer <= 0 {
		buffer = 64
	}
	q := &WorkerQueue{
		jobs:    make(chan Job, buffer),
		process: process,
		logger:  logger,
		closed:  make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	return q
}

func (q *WorkerQueue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-q.jobs:
			q.run(ctx, id, job)
		case <-q.closed:
			// intake has stopped; drain what is already buffered
			for {
				select {
				case job := <-q.jobs:
					q.run(ctx, id, job)
				default:
					return
				}
			}
		}
	}
}

func (q *WorkerQueue) run(ctx context.Context, id int, job Job) {
	start := time.Now()
	if err := q.process(ctx, job.FileID); err != nil {
		q.logger.Error("queue job failed",
			"worker", id, "file_id", job.FileID, "trace_id", job.TraceID, "err", err)
		return
	}
	q.logger.Info("queue job done",
		"worker", id, "file_id", job.FileID,
		"wait_ms", start.Sub(job.SubmittedAt).Milliseconds(),
		"duration_ms", time.Since(start).Milliseconds())
}

func (q *WorkerQueue) Enqueue(ctx context.Context, job Job) error {
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case <-q.closed:
		return ErrQueueClosed
	default:
	}
	select {
	case <-q.closed:
		return ErrQueueClosed
	case <-ctx.Done():
		return ctx.Err()
	case q.jobs <- job:
		return nil
	}
}

// Shutdown stops intake and waits for in-flight jobs until ctx expires.
func (q *WorkerQueue) Shutdown(ctx context.Context) {
	// The jobs channel is never closed: Enqueue may race with Shutdown, and a
	// send on a closed channel would panic. Workers drain it via the closed
	// signal instead.
	q.closeOne.Do(func() {
		close(q.closed)
	})
	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("queue shutdown timed out", "err", ctx.Err())
	}
}
