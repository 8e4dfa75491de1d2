// Package guardedstore wraps a tuple.Store with the per-(tenant,
// operation class) circuit breaker of spec §4.7, so every evaluator and
// facade call goes through the breaker without having to know it
// exists. A refused call surfaces merrors.CircuitOpenError without
// touching the inner store; a failed call surfaces
// merrors.StoreUnavailableError and counts against the breaker.
package guardedstore

import (
	"context"
	"errors"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/breaker"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// Store decorates an inner tuple.Store with breaker enforcement. It
// implements tuple.Store itself so callers are none the wiser.
type Store struct {
	inner    tuple.Store
	breakers *breaker.Manager
}

// New wraps inner with breaker enforcement keyed per tenant and
// operation class.
func New(inner tuple.Store, breakers *breaker.Manager) *Store {
	return &Store{inner: inner, breakers: breakers}
}

func (s *Store) guard(tenant, op string, fn func() error) error {
	b := s.breakers.Get(tenant, op)

	if !b.Allow() {
		return &merrors.CircuitOpenError{Tenant: tenant, Op: op}
	}

	if err := fn(); err != nil {
		// Cancellation is the caller giving up, not the store failing —
		// it must not trip the breaker, and the caller needs to tell it
		// apart from a genuine backend outage (spec §5, §7).
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return &merrors.CancelledError{Err: err}
		}

		b.RecordFailure()
		return &merrors.StoreUnavailableError{Op: op, Err: err}
	}

	b.RecordSuccess()

	return nil
}

func (s *Store) Write(ctx context.Context, tenant string, adds, removes []tuple.Tuple) (int64, error) {
	var revision int64

	err := s.guard(tenant, breaker.OpTupleStoreWrite, func() error {
		var innerErr error
		revision, innerErr = s.inner.Write(ctx, tenant, adds, removes)
		return innerErr
	})

	return revision, err
}

func (s *Store) GetDirectSubjects(ctx context.Context, tenant string, object tuple.Ref, relation string) ([]tuple.Tuple, error) {
	var out []tuple.Tuple

	err := s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		var innerErr error
		out, innerErr = s.inner.GetDirectSubjects(ctx, tenant, object, relation)
		return innerErr
	})

	return out, err
}

func (s *Store) FindRelatedObjects(ctx context.Context, tenant string, fromObject tuple.Ref, relation string) ([]tuple.Ref, error) {
	var out []tuple.Ref

	err := s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		var innerErr error
		out, innerErr = s.inner.FindRelatedObjects(ctx, tenant, fromObject, relation)
		return innerErr
	})

	return out, err
}

func (s *Store) FindObjectsForSubject(ctx context.Context, tenant string, subject tuple.Ref, relation, objectType string) ([]tuple.Ref, error) {
	var out []tuple.Ref

	err := s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		var innerErr error
		out, innerErr = s.inner.FindObjectsForSubject(ctx, tenant, subject, relation, objectType)
		return innerErr
	})

	return out, err
}

func (s *Store) FindSubjectsForObjectType(ctx context.Context, tenant string, relation string, fromType string, toObject tuple.Ref) ([]tuple.Ref, error) {
	var out []tuple.Ref

	err := s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		var innerErr error
		out, innerErr = s.inner.FindSubjectsForObjectType(ctx, tenant, relation, fromType, toObject)
		return innerErr
	})

	return out, err
}

func (s *Store) CurrentRevision(ctx context.Context, tenant string) (int64, error) {
	var rev int64

	err := s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		var innerErr error
		rev, innerErr = s.inner.CurrentRevision(ctx, tenant)
		return innerErr
	})

	return rev, err
}

func (s *Store) Read(ctx context.Context, tenant string, filter tuple.Filter, visit func(tuple.Tuple) error) error {
	return s.guard(tenant, breaker.OpTupleStoreRead, func() error {
		return s.inner.Read(ctx, tenant, filter, visit)
	})
}

var _ tuple.Store = (*Store)(nil)
