// Package bitmapstore is the Postgres-backed implementation of the
// bitmap accelerator's two ports (spec §4.5): the resource-id
// map/bitmap blobs (bitmap.Store) and the recompute queue
// (bitmap.QueueStore), dequeued with SELECT ... FOR UPDATE SKIP LOCKED
// so multiple rebacd workers can drain it concurrently.
package bitmapstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mopentelemetry"
	"github.com/LerianStudio/midaz/v3/common/mpostgres"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
)

// Repository is the Postgres-backed bitmap.Store and bitmap.QueueStore.
type Repository struct {
	connection *mpostgres.PostgresConnection
}

// New returns a Repository using the given Postgres connection.
func New(pc *mpostgres.PostgresConnection) *Repository {
	return &Repository{connection: pc}
}

var (
	_ bitmap.Store      = (*Repository)(nil)
	_ bitmap.QueueStore = (*Repository)(nil)
)

// ResourceID implements bitmap.Store.ResourceID: first lookup, then a
// racy-safe insert-or-fetch on conflict so concurrent first-uses never
// allocate two ids for the same resource.
func (r *Repository) ResourceID(ctx context.Context, tenant, resourceType, resourceID string) (int64, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.bitmapstore.resource_id")
	defer span.End()

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return 0, err
	}

	var id int64

	err = db.QueryRowContext(ctx, `
		INSERT INTO rebac_resource_id (tenant, resource_type, resource_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant, resource_type, resource_id) DO UPDATE SET resource_id = EXCLUDED.resource_id
		RETURNING id`,
		tenant, resourceType, resourceID,
	).Scan(&id)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to assign resource id", err)
		return 0, err
	}

	return id, nil
}

// ResourceRef implements bitmap.Store.ResourceRef.
func (r *Repository) ResourceRef(ctx context.Context, tenant, resourceType string, id int64) (string, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return "", err
	}

	var resourceID string

	err = db.QueryRowContext(ctx, `SELECT resource_id FROM rebac_resource_id WHERE tenant = $1 AND resource_type = $2 AND id = $3`,
		tenant, resourceType, id,
	).Scan(&resourceID)

	return resourceID, err
}

// LoadBitmap implements bitmap.Store.LoadBitmap.
func (r *Repository) LoadBitmap(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) ([]byte, int64, bool, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return nil, 0, false, err
	}

	var (
		data     []byte
		revision int64
	)

	err = db.QueryRowContext(ctx, `
		SELECT data, revision FROM rebac_bitmap
		WHERE tenant = $1 AND subject_type = $2 AND subject_id = $3 AND permission = $4 AND resource_type = $5`,
		tenant, subject.Type, subject.ID, permission, resourceType,
	).Scan(&data, &revision)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, 0, false, nil
	case err != nil:
		return nil, 0, false, err
	}

	return data, revision, true, nil
}

// SaveBitmap implements bitmap.Store.SaveBitmap.
func (r *Repository) SaveBitmap(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string, data []byte, revision int64) error {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.bitmapstore.save_bitmap")
	defer span.End()

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO rebac_bitmap (tenant, subject_type, subject_id, permission, resource_type, data, revision, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (tenant, subject_type, subject_id, permission, resource_type)
		DO UPDATE SET data = EXCLUDED.data, revision = EXCLUDED.revision, updated_at = EXCLUDED.updated_at
		WHERE rebac_bitmap.revision <= EXCLUDED.revision`,
		tenant, subject.Type, subject.ID, permission, resourceType, data, revision, time.Now().UTC(),
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to save bitmap", err)
	}

	return err
}

// Enqueue implements bitmap.QueueStore.Enqueue.
func (r *Repository) Enqueue(ctx context.Context, job bitmap.Job) error {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return err
	}

	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	notBefore := job.NotBefore
	if notBefore.IsZero() {
		notBefore = time.Now().UTC()
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO rebac_bitmap_job (id, tenant, subject_type, subject_id, permission, resource_type, status, priority, attempts, created_at, not_before)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10)`,
		job.ID, job.Tenant, job.Subject.Type, job.Subject.ID, job.Permission, job.ResourceType,
		string(bitmap.JobPending), job.Priority, time.Now().UTC(), notBefore,
	)

	return err
}

// Dequeue implements bitmap.QueueStore.Dequeue using SELECT ... FOR
// UPDATE SKIP LOCKED so concurrent workers never double-claim a row.
func (r *Repository) Dequeue(ctx context.Context) (bitmap.Job, bool, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return bitmap.Job{}, false, err
	}

	tx, err := db.Begin()
	if err != nil {
		return bitmap.Job{}, false, err
	}

	var row jobRow

	err = tx.QueryRowContext(ctx, `
		SELECT id, tenant, subject_type, subject_id, permission, resource_type, status, priority, attempts, created_at, not_before
		FROM rebac_bitmap_job
		WHERE status = $1 AND not_before <= $2
		ORDER BY priority DESC, created_at ASC
		FOR UPDATE SKIP LOCKED
		LIMIT 1`,
		string(bitmap.JobPending), time.Now().UTC(),
	).Scan(&row.ID, &row.Tenant, &row.SubjectType, &row.SubjectID, &row.Permission, &row.ResourceType,
		&row.Status, &row.Priority, &row.Attempts, &row.CreatedAt, &row.NotBefore)

	if errors.Is(err, sql.ErrNoRows) {
		_ = tx.Rollback()
		return bitmap.Job{}, false, nil
	}

	if err != nil {
		_ = tx.Rollback()
		return bitmap.Job{}, false, err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE rebac_bitmap_job SET status = $1, claimed_at = $2 WHERE id = $3`, string(bitmap.JobProcessing), time.Now().UTC(), row.ID); err != nil {
		_ = tx.Rollback()
		return bitmap.Job{}, false, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return bitmap.Job{}, false, commitErr
	}

	row.Status = string(bitmap.JobProcessing)

	return row.toJob(), true, nil
}

// Complete implements bitmap.QueueStore.Complete.
func (r *Repository) Complete(ctx context.Context, jobID string) error {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `UPDATE rebac_bitmap_job SET status = $1 WHERE id = $2`, string(bitmap.JobCompleted), jobID)

	return err
}

// Fail implements bitmap.QueueStore.Fail: increments attempts and
// either re-enqueues as pending with notBefore or parks the job once
// maxAttempts is exceeded.
func (r *Repository) Fail(ctx context.Context, jobID string, notBefore time.Time, maxAttempts int) error {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return err
	}

	var attempts int

	err = db.QueryRowContext(ctx, `
		UPDATE rebac_bitmap_job SET attempts = attempts + 1 WHERE id = $1
		RETURNING attempts`, jobID,
	).Scan(&attempts)
	if err != nil {
		return err
	}

	status := bitmap.JobPending
	if attempts >= maxAttempts {
		status = bitmap.JobParked
	}

	_, err = db.ExecContext(ctx, `UPDATE rebac_bitmap_job SET status = $1, not_before = $2 WHERE id = $3`,
		string(status), notBefore, jobID)

	return err
}

// ReapAbandoned implements bitmap.QueueStore.ReapAbandoned: a worker
// that died mid-job leaves a row stuck in processing — requeue it as
// pending so another worker picks it up.
func (r *Repository) ReapAbandoned(ctx context.Context, olderThan time.Duration) (int, error) {
	db, err := r.connection.GetDB(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-olderThan)

	result, err := db.ExecContext(ctx, `
		UPDATE rebac_bitmap_job SET status = $1, not_before = $2
		WHERE status = $3 AND claimed_at < $2`,
		string(bitmap.JobPending), cutoff, string(bitmap.JobProcessing),
	)
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()

	return int(n), err
}

// QueueDepth implements bitmap.QueueStore.QueueDepth: pending job count
// per tenant, the §4.5 queue-depth health signal.
func (r *Repository) QueueDepth(ctx context.Context) (map[string]int, error) {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.bitmapstore.queue_depth")
	defer span.End()

	db, err := r.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT tenant, count(*) FROM rebac_bitmap_job
		WHERE status = $1
		GROUP BY tenant`,
		string(bitmap.JobPending),
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query queue depth", err)
		return nil, err
	}
	defer rows.Close()

	depths := make(map[string]int)

	for rows.Next() {
		var (
			tenant string
			count  int
		)

		if err := rows.Scan(&tenant, &count); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to scan queue depth row", err)
			return nil, err
		}

		depths[tenant] = count
	}

	return depths, rows.Err()
}
