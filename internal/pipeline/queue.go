package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tunde-ajayi/cardscan/internal/common"
	"github.com/tunde-ajayi/cardscan/internal/entity"
	"github.com/tunde-ajayi/cardscan/internal/metrics"
)

// Queue fans card files out to a fixed pool of workers, each running the
// full processor sequence. Per-file ordering does not matter; the ledger
// makes concurrent duplicates safe.
type Queue struct {
	proc    *Processor
	workers int
	logger  *slog.Logger

	// JobTimeout bounds one file's processing; zero means no limit.
	// Set before Start.
	JobTimeout time.Duration

	jobs chan entity.CardFile
	wg   sync.WaitGroup

	startOnce sync.Once
	stopOnce  sync.Once
}

func NewQueue(proc *Processor, workers, buffer int, logger *slog.Logger) *Queue {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = workers * 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Queue{
		proc:    proc,
		workers: workers,
		logger:  logger,
		jobs:    make(chan entity.CardFile, buffer),
	}
}

// Start launches the worker pool. Workers exit when the queue is stopped
// or the context is cancelled.
func (q *Queue) Start(ctx context.Context) {
	q.startOnce.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go q.worker(ctx, i)
		}
		q.logger.Info("processing queue started", "workers", q.workers, "buffer", cap(q.jobs))
	})
}

// Enqueue hands a file to the pool, blocking while the buffer is full.
// Returns false once ctx is cancelled.
func (q *Queue) Enqueue(ctx context.Context, file entity.CardFile) bool {
	select {
	case q.jobs <- file:
		metrics.QueueDepth.Set(float64(len(q.jobs)))
		return true
	case <-ctx.Done():
		return false
	}
}

// Stop closes intake and waits for in-flight jobs to finish.
func (q *Queue) Stop() {
	q.stopOnce.Do(func() {
		close(q.jobs)
	})
	q.wg.Wait()
	q.logger.Info("processing queue drained")
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case file, ok := <-q.jobs:
			if !ok {
				return
			}
			metrics.QueueDepth.Set(float64(len(q.jobs)))
			jctx := ctx
			cancel := context.CancelFunc(func() {})
			if q.JobTimeout > 0 {
				jctx, cancel = common.WithTimeout(ctx, q.JobTimeout)
			}
			if _, err := q.proc.Process(jctx, file); err != nil {
				q.logger.Error("processing failed",
					"worker", id,
					"source_file_id", file.SourceID,
					"filename", file.Filename,
					"error", err,
				)
			}
			cancel()
		}
	}
}
