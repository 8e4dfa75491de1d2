// Package core wires the Tuple Store, Namespace Registry, Graph
// Evaluator, Decision Cache, Bitmap Index, Circuit Breaker, and
// Consistency Manager into the external interface of spec §6. It is
// the only package a host process (cmd/rebacd or an RPC wrapper)
// should need to hold a reference to.
package core

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/cache"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/consistencymgr"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/evaluator"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/events"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mlog"
)

// Service is the CoreServices facade described by spec §6.
type Service struct {
	Store       tuple.Store // breaker-guarded (internal/services/guardedstore)
	Registry    *namespace.Registry
	Evaluator   *evaluator.Evaluator
	Cache       *cache.Cache
	Bitmap      *bitmap.Index // nil disables the accelerator entirely
	Consistency *consistencymgr.Manager
	Events      events.Publisher

	// checkGroup collapses duplicate concurrent CheckPermission calls
	// for the same (tenant, subject, permission, object) on a cache
	// miss into a single live evaluation (spec §5.1 "P5" purity under
	// concurrency): the waiters all observe the one evaluation's
	// result rather than each re-walking the rewrite graph.
	checkGroup singleflight.Group
}

// New builds a Service. events and bitmapIndex may be nil.
func New(store tuple.Store, registry *namespace.Registry, eval *evaluator.Evaluator, c *cache.Cache, bm *bitmap.Index, cm *consistencymgr.Manager, pub events.Publisher) *Service {
	if pub == nil {
		pub = events.NoopPublisher{}
	}

	return &Service{Store: store, Registry: registry, Evaluator: eval, Cache: c, Bitmap: bm, Consistency: cm, Events: pub}
}

// effectiveMode resolves the consistency mode a call should actually
// run under: an inbound zookie, when present, always wins over the
// caller-supplied default (spec §6 "defaults to MINIMIZE_LATENCY when
// no zookie is supplied and to AT_LEAST_AS_FRESH(zookie.revision) when
// one is").
func (s *Service) effectiveMode(tenant, inboundZookie string, requested consistency.Mode) (consistency.Mode, error) {
	if inboundZookie == "" {
		return requested, nil
	}

	mode, err := s.Consistency.ModeFromZookie(tenant, inboundZookie)
	if err != nil {
		return consistency.Mode{}, err
	}

	return mode, nil
}

func (s *Service) zookieFor(tenant string, revision int64) string {
	return s.Consistency.ZookieForWrite(tenant, revision)
}

// degradeOrSurface implements spec §4.3/§4.4's shared fallback: a
// CircuitOpenError or StoreUnavailableError from the evaluator degrades
// to any cached answer regardless of its revision stamp (marking the
// response degraded), or else bubbles up unchanged.
func (s *Service) degradeOrSurface(ctx context.Context, key cache.Key, cause error) (bool, int64, bool, error) {
	var circuitOpen *merrors.CircuitOpenError
	var unavailable *merrors.StoreUnavailableError

	if errors.As(cause, &circuitOpen) || errors.As(cause, &unavailable) {
		entry, hit, _ := s.Cache.Get(ctx, key, 0)
		if hit {
			return entry.Verdict, entry.Stamp, true, nil
		}
	}

	return false, 0, false, cause
}

func (s *Service) logger(ctx context.Context) mlog.Logger { return common.NewLoggerFromContext(ctx) }

// handleDepthExceeded inspects err for merrors.DepthExceededError and,
// if found, publishes a warning event and reports it as handled. Spec
// §7: depth-exceeded is "treated as deny plus a warning event; never
// retried silently" — it must never reach the caller as a blocking
// error the way a store failure or cancellation does.
func (s *Service) handleDepthExceeded(ctx context.Context, tenant string, err error) bool {
	var depthErr *merrors.DepthExceededError
	if !errors.As(err, &depthErr) {
		return false
	}

	_ = s.Events.Publish(ctx, events.Event{
		Kind:       events.KindDepthExceeded,
		Tenant:     tenant,
		Permission: depthErr.Permission,
		MaxDepth:   depthErr.MaxDepth,
		OccurredAt: time.Now(),
	})

	return true
}
