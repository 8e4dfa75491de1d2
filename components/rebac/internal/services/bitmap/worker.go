package bitmap

import (
	"context"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mlog"
)

// Resolver computes the full, authoritative answer for a recompute job
// — in practice internal/services/evaluator.Evaluator.LookupResources,
// injected as a func so this package does not import the evaluator
// (which would create an import cycle once the evaluator starts
// consulting the bitmap index for its own fast path).
type Resolver func(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) ([]tuple.Ref, int64, error)

// WorkerConfig tunes the recompute worker's pacing (spec §4.5).
type WorkerConfig struct {
	PollInterval time.Duration
	ReapInterval time.Duration
	ReapAfter    time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration
}

// DefaultWorkerConfig returns reasonable defaults: poll every second,
// reap abandoned `processing` rows older than five minutes, cap
// attempts at five with a one-minute linear backoff between retries.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: time.Second,
		ReapInterval: time.Minute,
		ReapAfter:    5 * time.Minute,
		MaxAttempts:  5,
		RetryBackoff: time.Minute,
	}
}

// Worker drains the recompute queue, bypassing the bitmap index itself
// (via resolver) to avoid self-reference (spec §4.5 "computes the full
// answer by calling lookup_resources, bypassing the bitmap index").
type Worker struct {
	index    *Index
	resolver Resolver
	cfg      WorkerConfig
	wake     chan struct{}
}

// NewWorker builds a Worker bound to index and resolver.
func NewWorker(index *Index, resolver Resolver, cfg WorkerConfig) *Worker {
	if cfg.PollInterval <= 0 {
		cfg = DefaultWorkerConfig()
	}

	return &Worker{index: index, resolver: resolver, cfg: cfg, wake: make(chan struct{}, 1)}
}

// Wake nudges Run to drain the queue immediately instead of waiting out
// the rest of the current poll interval. Adapters consuming the
// Announcer's RabbitMQ notifications call this on delivery; the send is
// non-blocking so a burst of announcements collapses into one drain.
func (w *Worker) Wake() {
	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run drains the queue until ctx is cancelled. It is meant to be
// started as its own goroutine; multiple Workers across processes may
// run concurrently against the same QueueStore since Dequeue claims
// rows with SKIP LOCKED semantics.
func (w *Worker) Run(ctx context.Context) {
	logger := common.NewLoggerFromContext(ctx)
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for w.processOne(ctx, logger) {
				// drain back-to-back while work is available
			}
		case <-w.wake:
			for w.processOne(ctx, logger) {
			}
		}
	}
}

// RunReaper periodically requeues abandoned `processing` rows until
// ctx is cancelled.
func (w *Worker) RunReaper(ctx context.Context) {
	logger := common.NewLoggerFromContext(ctx)
	ticker := time.NewTicker(w.cfg.ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := w.index.queue.ReapAbandoned(ctx, w.cfg.ReapAfter)
			if err != nil {
				logger.Errorf("bitmap: reap abandoned jobs: %v", err)
				continue
			}

			if n > 0 {
				logger.Infof("bitmap: requeued %d abandoned recompute jobs", n)
			}

			if err := w.exportQueueDepth(ctx); err != nil {
				logger.Errorf("bitmap: export queue depth: %v", err)
			}
		}
	}
}

// processOne claims and processes a single job, returning true if one
// was available (so Run can drain a backlog without waiting out a
// whole poll interval per job).
func (w *Worker) processOne(ctx context.Context, logger mlog.Logger) bool {
	job, found, err := w.index.queue.Dequeue(ctx)
	if err != nil {
		logger.Errorf("bitmap: dequeue recompute job: %v", err)
		return false
	}

	if !found {
		return false
	}

	refs, revision, err := w.resolver(ctx, job.Tenant, job.Subject, job.Permission, job.ResourceType)
	if err != nil {
		w.fail(ctx, logger, job, err)
		return true
	}

	bm := roaring.New()

	for _, ref := range refs {
		id, err := w.index.store.ResourceID(ctx, job.Tenant, job.ResourceType, ref.ID)
		if err != nil {
			w.fail(ctx, logger, job, err)
			return true
		}

		bm.Add(uint32(id))
	}

	encoded, err := encodeBitmap(bm)
	if err != nil {
		w.fail(ctx, logger, job, err)
		return true
	}

	if err := w.index.store.SaveBitmap(ctx, job.Tenant, job.Subject, job.Permission, job.ResourceType, encoded, revision); err != nil {
		w.fail(ctx, logger, job, err)
		return true
	}

	if err := w.index.queue.Complete(ctx, job.ID); err != nil {
		logger.Errorf("bitmap: mark job %s completed: %v", job.ID, err)
	}

	return true
}

func (w *Worker) fail(ctx context.Context, logger mlog.Logger, job Job, cause error) {
	logger.Warnf("bitmap: recompute job %s failed (attempt %d): %v", job.ID, job.Attempts+1, cause)

	notBefore := time.Now().Add(w.cfg.RetryBackoff * time.Duration(job.Attempts+1))

	if err := w.index.queue.Fail(ctx, job.ID, notBefore, w.cfg.MaxAttempts); err != nil {
		logger.Errorf("bitmap: mark job %s failed: %v", job.ID, err)
	}
}
