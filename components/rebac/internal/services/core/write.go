package core

import (
	"context"
	"time"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/events"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// WriteRelationships answers spec §6's WriteRelationships: adds and
// removes tuples transactionally, invalidates the decision cache for
// tenant, keeps the bitmap index's direct-grant entries warm via
// write-through, and mints the zookie the new revision corresponds to.
func (s *Service) WriteRelationships(ctx context.Context, tenant string, adds, removes []tuple.Tuple) (string, error) {
	if err := s.validateWriteRequest(tenant, adds, removes); err != nil {
		return "", err
	}

	revision, err := s.Store.Write(ctx, tenant, adds, removes)
	if err != nil {
		return "", err
	}

	now := time.Now()

	_ = s.Events.Publish(ctx, events.Event{Kind: events.KindRevisionChanged, Tenant: tenant, Revision: revision, OccurredAt: now})

	if cerr := s.Cache.InvalidateTenant(ctx, tenant); cerr == nil {
		_ = s.Events.Publish(ctx, events.Event{Kind: events.KindCacheInvalidated, Tenant: tenant, OccurredAt: now})
	}

	if s.Bitmap != nil {
		s.syncBitmap(ctx, tenant, adds, true, revision)
		s.syncBitmap(ctx, tenant, removes, false, revision)
	}

	return s.zookieFor(tenant, revision), nil
}

// DeleteRelationships answers spec §6's DeleteRelationships: reads
// every tuple matching filter, then removes exactly those (so the
// revision allocated reflects precisely what changed, not the filter
// itself).
func (s *Service) DeleteRelationships(ctx context.Context, tenant string, filter tuple.Filter) (string, error) {
	if tenant == "" {
		return "", &merrors.InvalidRequestError{Reason: "missing required field: tenant"}
	}

	var matches []tuple.Tuple

	err := s.Store.Read(ctx, tenant, filter, func(t tuple.Tuple) error {
		matches = append(matches, t)
		return nil
	})
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		revision, err := s.Store.CurrentRevision(ctx, tenant)
		if err != nil {
			return "", err
		}

		return s.zookieFor(tenant, revision), nil
	}

	return s.WriteRelationships(ctx, tenant, nil, matches)
}

// ReadRelationships answers spec §6's ReadRelationships: a streaming
// read gated by the resolved consistency mode (FULLY_CONSISTENT forces
// a bounded wait against the current revision before reading; the
// other modes read immediately since relationship reads, unlike
// permission checks, have no cache to consult).
func (s *Service) ReadRelationships(ctx context.Context, tenant string, filter tuple.Filter, mode consistency.Mode, inboundZookie string, visit func(tuple.Tuple) error) error {
	if tenant == "" {
		return &merrors.InvalidRequestError{Reason: "missing required field: tenant"}
	}

	mode, err := s.effectiveMode(tenant, inboundZookie, mode)
	if err != nil {
		return err
	}

	if _, err := s.Consistency.Resolve(ctx, tenant, mode); err != nil {
		return err
	}

	return s.Store.Read(ctx, tenant, filter, visit)
}

// syncBitmap applies the write-through path of spec §4.5 for direct
// (non-userset) tuples, flipping the bit for every permission
// namespace.AliasesOf says is single-edge-safe for this relation. A
// userset-referencing tuple (a grant to a group) can move many
// subjects at once and is handled by enqueuing a recompute job per
// current member instead.
func (s *Service) syncBitmap(ctx context.Context, tenant string, tuples []tuple.Tuple, add bool, revision int64) {
	logger := s.logger(ctx)

	for _, t := range tuples {
		typeDef, ok := s.Registry.TypeDef(t.ObjectType)
		if !ok {
			continue
		}

		if t.IsUserset() {
			s.enqueueGroupRecompute(ctx, tenant, t, typeDef)
			continue
		}

		object := t.Object()
		subject := t.Subject()

		permissions := namespace.AliasesOf(typeDef, t.Relation)

		for _, perm := range permissions {
			var werr error
			if add {
				werr = s.Bitmap.WriteThroughAdd(ctx, tenant, subject, perm, object, revision)
			} else {
				werr = s.Bitmap.WriteThroughRemove(ctx, tenant, subject, perm, object, revision)
			}

			if werr != nil {
				logger.Warnf("bitmap write-through failed for %s#%s on %s: %v", perm, subject.String(), object.String(), werr)
			}
		}
	}
}

// enqueueGroupRecompute handles a tuple whose subject is a userset
// reference: every current member of that userset can gain or lose the
// affected permissions, so each is enqueued for a full recompute
// rather than patched in place.
func (s *Service) enqueueGroupRecompute(ctx context.Context, tenant string, t tuple.Tuple, typeDef namespace.TypeDef) {
	logger := s.logger(ctx)

	members, err := s.Evaluator.Expand(ctx, tenant, t.SubjectRelation, tuple.Ref{Type: t.SubjectType, ID: t.SubjectID})
	if err != nil {
		logger.Warnf("bitmap recompute: resolve userset membership for %s#%s: %v", t.SubjectType, t.SubjectRelation, err)
		return
	}

	permissions := namespace.AliasesOf(typeDef, t.Relation)

	for _, member := range members {
		for _, perm := range permissions {
			job := bitmap.Job{
				Tenant:       tenant,
				Subject:      member,
				Permission:   perm,
				ResourceType: t.ObjectType,
				Status:       bitmap.JobPending,
				Priority:     0,
				CreatedAt:    time.Now(),
			}

			if err := s.Bitmap.EnqueueRecompute(ctx, job); err != nil {
				logger.Warnf("bitmap recompute: enqueue %s/%s/%s: %v", tenant, member.String(), perm, err)
			}
		}
	}
}
