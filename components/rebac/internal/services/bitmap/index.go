package bitmap

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// Result is the outcome of a bitmap-backed CheckAccess.
type Result int

const (
	// Unknown means no bitmap exists for this key — callers must fall
	// back to the graph evaluator (spec §4.5 "unknown means no bitmap
	// present; callers fall back to §4.3").
	Unknown Result = iota
	Allow
	Deny
)

// Index is the bitmap accelerator facade: read contract
// (CheckAccess/AccessibleResources) plus the write-through and
// recompute-enqueue paths that keep it warm.
type Index struct {
	store     Store
	queue     QueueStore
	announcer Announcer
}

// New builds an Index. queue and announcer may be nil — a nil queue
// disables EnqueueRecompute (write-through keeps working), a nil
// announcer falls back to poll-only workers.
func New(store Store, queue QueueStore, announcer Announcer) *Index {
	return &Index{store: store, queue: queue, announcer: announcer}
}

// CheckAccess answers membership against the materialized bitmap for
// (subject, permission, resourceType), bypassing the graph evaluator
// entirely on a hit.
func (x *Index) CheckAccess(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref) (Result, int64, error) {
	data, revision, found, err := x.store.LoadBitmap(ctx, tenant, subject, permission, object.Type)
	if err != nil {
		return Unknown, 0, err
	}

	if !found {
		return Unknown, 0, nil
	}

	id, err := x.store.ResourceID(ctx, tenant, object.Type, object.ID)
	if err != nil {
		return Unknown, 0, err
	}

	bm, err := decodeBitmap(data)
	if err != nil {
		return Unknown, 0, err
	}

	if bm.Contains(uint32(id)) {
		return Allow, revision, nil
	}

	return Deny, revision, nil
}

// AccessibleResources materializes the full bitmap back into resource
// refs. found is false if no bitmap exists yet.
func (x *Index) AccessibleResources(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) ([]tuple.Ref, int64, bool, error) {
	data, revision, found, err := x.store.LoadBitmap(ctx, tenant, subject, permission, resourceType)
	if err != nil || !found {
		return nil, 0, found, err
	}

	bm, err := decodeBitmap(data)
	if err != nil {
		return nil, 0, false, err
	}

	out := make([]tuple.Ref, 0, bm.GetCardinality())

	it := bm.Iterator()
	for it.HasNext() {
		id := it.Next()

		resourceID, err := x.store.ResourceRef(ctx, tenant, resourceType, int64(id))
		if err != nil {
			return nil, 0, false, err
		}

		out = append(out, tuple.Ref{Type: resourceType, ID: resourceID})
	}

	return out, revision, true, nil
}

// WriteThroughAdd sets the bit for object in the bitmap for (subject,
// permission, resourceType), a synchronous best-effort update for a
// single new grant (spec §4.5 "Write-through (single edge)"). Missing
// bitmap is not an error — there is nothing to keep warm yet.
func (x *Index) WriteThroughAdd(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref, revision int64) error {
	return x.writeThrough(ctx, tenant, subject, permission, object, revision, true)
}

// WriteThroughRemove clears the bit for object, mirroring WriteThroughAdd.
func (x *Index) WriteThroughRemove(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref, revision int64) error {
	return x.writeThrough(ctx, tenant, subject, permission, object, revision, false)
}

func (x *Index) writeThrough(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref, revision int64, add bool) error {
	data, _, found, err := x.store.LoadBitmap(ctx, tenant, subject, permission, object.Type)
	if err != nil {
		return err
	}

	if !found && !add {
		return nil
	}

	var bm *roaring.Bitmap
	if found {
		bm, err = decodeBitmap(data)
		if err != nil {
			return err
		}
	} else {
		bm = roaring.New()
	}

	id, err := x.store.ResourceID(ctx, tenant, object.Type, object.ID)
	if err != nil {
		return err
	}

	if add {
		bm.Add(uint32(id))
	} else {
		bm.Remove(uint32(id))
	}

	encoded, err := encodeBitmap(bm)
	if err != nil {
		return err
	}

	return x.store.SaveBitmap(ctx, tenant, subject, permission, object.Type, encoded, revision)
}

// EnqueueRecompute schedules a full recompute of (subject, permission,
// resourceType) — used when a single write can change the answer for
// many subjects at once (e.g. a grant to a group), per spec §4.5
// "Recompute (full)". A nil queue makes this a no-op: write-through
// coverage degrades but correctness does not, since CheckAccess falls
// back to Unknown -> graph evaluator for anything the bitmap missed.
func (x *Index) EnqueueRecompute(ctx context.Context, job Job) error {
	if x.queue == nil {
		return nil
	}

	if err := x.queue.Enqueue(ctx, job); err != nil {
		return err
	}

	if x.announcer == nil {
		return nil
	}

	return x.announcer.Announce(ctx, job)
}
