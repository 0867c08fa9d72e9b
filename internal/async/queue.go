// Package async runs scans on a bounded worker pool for batch processing.
// Each scan is a pure function of its input, so workers share nothing but
// the scanner handle.
package async

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/medilens/report-scanner/internal/entity"
	"github.com/medilens/report-scanner/internal/ocr"
	"github.com/medilens/report-scanner/internal/pipeline"
)

// Job is one file to scan.
type Job struct {
	ID          uuid.UUID
	Path        string
	SubmittedAt time.Time
}

// ResultFunc receives the outcome of each job. Called from worker
// goroutines; implementations must be safe for concurrent use.
type ResultFunc func(job Job, res *entity.ExtractionResult, err error)

type ScanQueue struct {
	scanner  *pipeline.Scanner
	logger   *slog.Logger
	onResult ResultFunc
	workers  int
	timeout  time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ScanQueue)

func WithWorkers(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *ScanQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScanQueue(scanner *pipeline.Scanner, onResult ResultFunc, logger *slog.Logger, opts ...Option) *ScanQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ScanQueue{
		scanner:  scanner,
		logger:   logger,
		onResult: onResult,
		workers:  4,
		timeout:  3 * time.Minute,
		ch:       make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScanQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.process(ctx, job)
					cancel()

					if err != nil {
						q.logger.Error("scan failed", "worker_id", workerID, "job_id", job.ID, "path", job.Path, "error", err)
					} else {
						q.logger.Info("scan ok", "worker_id", workerID, "job_id", job.ID, "path", job.Path,
							"report_type", res.ReportType, "confidence", res.Confidence)
					}
					if q.onResult != nil {
						q.onResult(job, res, err)
					}
				}

				q.logger.Debug("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScanQueue) process(ctx context.Context, job Job) (*entity.ExtractionResult, error) {
	data, err := os.ReadFile(job.Path)
	if err != nil {
		return nil, err
	}
	mime, err := ocr.MIMEForPath(job.Path)
	if err != nil {
		return nil, err
	}
	return q.scanner.Scan(ctx, entity.RawDocument{
		Data:     data,
		MIMEType: mime,
		Name:     filepath.Base(job.Path),
	})
}

// Enqueue submits a job. Blocks when the queue is full; a closed queue
// drops the job with a warning.
func (q *ScanQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", job.ID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued scan", "job_id", job.ID, "path", job.Path)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", job.ID)
		q.ch <- job
	}
	return nil
}

// Shutdown stops intake and waits for in-flight jobs to drain, or for ctx.
func (q *ScanQueue) Shutdown(ctx context.Context) {
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
