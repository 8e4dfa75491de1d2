package bitmap

import (
	"context"
	"time"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// Store is the persistence port for the resource-id map and the
// materialized bitmaps themselves (spec §4.5), backed by Postgres.
type Store interface {
	// ResourceID returns the stable per-tenant integer id for
	// (resourceType, resourceID), assigning one on first use.
	ResourceID(ctx context.Context, tenant, resourceType, resourceID string) (int64, error)

	// ResourceRef reverses ResourceID for result materialization.
	ResourceRef(ctx context.Context, tenant, resourceType string, id int64) (string, error)

	// LoadBitmap returns the serialized bitmap and the revision it was
	// computed at. found is false if no bitmap has ever been written
	// for this key (spec §4.5 "unknown" read contract).
	LoadBitmap(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) (data []byte, revision int64, found bool, err error)

	// SaveBitmap upserts the serialized bitmap at the given revision.
	SaveBitmap(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string, data []byte, revision int64) error
}

// JobStatus is a recompute queue row's lifecycle state.
type JobStatus string

const (
	JobPending    JobStatus = "pending"
	JobProcessing JobStatus = "processing"
	JobCompleted  JobStatus = "completed"
	JobFailed     JobStatus = "failed"
	JobParked     JobStatus = "parked"
)

// Job is one recompute queue row (spec §4.5 "Recompute (full)").
type Job struct {
	ID           string
	Tenant       string
	Subject      tuple.Ref
	Permission   string
	ResourceType string
	Status       JobStatus
	Priority     int
	Attempts     int
	CreatedAt    time.Time
	NotBefore    time.Time
}

// QueueStore is the Postgres-backed recompute queue port. Dequeue must
// use `SELECT ... WHERE status='pending' ORDER BY priority, created_at
// FOR UPDATE SKIP LOCKED` semantics so multiple workers can drain the
// queue concurrently without double-processing a row.
type QueueStore interface {
	Enqueue(ctx context.Context, job Job) error
	// Dequeue claims the next eligible pending job, marking it
	// processing, or returns found=false if none is ready.
	Dequeue(ctx context.Context) (job Job, found bool, err error)
	Complete(ctx context.Context, jobID string) error
	// Fail increments attempts and either re-enqueues as pending with
	// notBefore or parks the job if maxAttempts is exceeded.
	Fail(ctx context.Context, jobID string, notBefore time.Time, maxAttempts int) error
	// ReapAbandoned requeues rows stuck in `processing` longer than
	// olderThan — a worker that died mid-job leaves one of these.
	ReapAbandoned(ctx context.Context, olderThan time.Duration) (int, error)
	// QueueDepth counts pending jobs, per tenant, for the §4.5 queue
	// depth health signal.
	QueueDepth(ctx context.Context) (map[string]int, error)
}

// Announcer fires a best-effort notification that fresh recompute work
// exists, so idle workers do not have to poll (spec §4.5's additions:
// "announced over RabbitMQ... Postgres row remains the source of
// truth"). A nil Announcer is valid; workers fall back to polling
// Dequeue on an interval.
type Announcer interface {
	Announce(ctx context.Context, job Job) error
}
