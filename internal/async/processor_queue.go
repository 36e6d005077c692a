package async

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrQueueClosed is returned by Enqueue once Shutdown has begun, so the
// submitter can surface the rejection instead of leaving the document
// stranded in PENDING.
var ErrQueueClosed = errors.New("processor queue is shut down")

// DocumentProcessor drives one document through its background unit of work.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, documentID uuid.UUID) error
}

// ProcessorQueue is a bounded worker pool: Enqueue hands jobs to a buffered
// channel serviced by a fixed number of workers, so concurrent external-API
// calls stay bounded and submission never waits on processing.
type ProcessorQueue struct {
	proc    DocumentProcessor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc DocumentProcessor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.ProcessDocument(ctx, job.DocumentID)
					cancel()

					// A document's failure is its own terminal outcome; it
					// never aborts siblings or the worker.
					if err != nil {
						q.logger.Error("processing failed", "worker_id", workerID, "document_id", job.DocumentID, "batch_id", job.BatchID, "error", err)
					} else {
						q.logger.Info("processed document", "worker_id", workerID, "document_id", job.DocumentID, "batch_id", job.BatchID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return fmt.Errorf("document %s: %w", job.DocumentID, ErrQueueClosed)
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for processing", "document_id", job.DocumentID, "batch_id", job.BatchID)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
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
