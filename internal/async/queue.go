// Package async runs ingestion off the caller's goroutine, for backfills
// where the submitter does not need the parsed result.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hackybara/expense-tracker/internal/ingest"
)

// Ingestor is the slice of ingest.Service the queue needs.
type Ingestor interface {
	IngestText(ctx context.Context, req *ingest.Request) (*ingest.Result, error)
}

type Job struct {
	Request     *ingest.Request
	SubmittedAt time.Time
}

type IngestQueue struct {
	svc     Ingestor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*IngestQueue)

func WithWorkers(n int) Option {
	return func(q *IngestQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *IngestQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *IngestQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewIngestQueue(svc Ingestor, logger *slog.Logger, opts ...Option) *IngestQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &IngestQueue{
		svc:     svc,
		logger:  logger,
		workers: 4,
		timeout: time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *IngestQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.svc.IngestText(ctx, job.Request)
					cancel()

					if err != nil {
						q.logger.Error("async ingest failed",
							"worker_id", workerID,
							"filename", job.Request.Filename,
							"error", err)
						continue
					}
					q.logger.Info("async ingest done",
						"worker_id", workerID,
						"filename", job.Request.Filename,
						"transaction_id", res.Transaction.ID,
						"category", string(res.Category))
				}
			}(i + 1)
		}
	})
}

// Enqueue blocks when the buffer is full. Returns false once Shutdown began.
func (q *IngestQueue) Enqueue(job Job) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue, queue is shutting down", "filename", job.Request.Filename)
		return false
	}
	select {
	case q.ch <- job:
	default:
		q.logger.Warn("queue full, applying backpressure", "filename", job.Request.Filename)
		q.ch <- job
	}
	return true
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (q *IngestQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
