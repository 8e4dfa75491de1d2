package core

import (
	"context"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/cache"
)

// checkOutcome is the singleflight.Group payload for a coalesced
// CheckPermission evaluation.
type checkOutcome struct {
	allowed  bool
	stamp    int64
	degraded bool
}

// CheckPermission answers spec §6's CheckPermission: whether subject
// holds permission on object. degraded reports whether the answer came
// from the decision cache after the store path failed, rather than
// from a live evaluation (spec §4.3/§4.4 fallback contract).
func (s *Service) CheckPermission(
	ctx context.Context,
	tenant string,
	subject tuple.Ref,
	permission string,
	object tuple.Ref,
	mode consistency.Mode,
	inboundZookie string,
	caveatCtx map[string]any,
) (decision bool, zookie string, degraded bool, err error) {
	if err := s.validatePermissionRequest(tenant, subject, permission, object); err != nil {
		return false, "", false, err
	}

	mode, err = s.effectiveMode(tenant, inboundZookie, mode)
	if err != nil {
		return false, "", false, err
	}

	key := cache.Key{Tenant: tenant, Subject: subject, Permission: permission, Object: object}

	if mode.AllowsCacheRead() {
		if entry, hit, cerr := s.Cache.Get(ctx, key, mode.MinRevisionForCache()); cerr == nil && hit {
			return entry.Verdict, s.zookieFor(tenant, entry.Stamp), false, nil
		}
	}

	revision, err := s.Consistency.Resolve(ctx, tenant, mode)
	if err != nil {
		return false, "", false, err
	}

	if s.Bitmap != nil && !mode.IsFullyConsistent() {
		result, bmRevision, berr := s.Bitmap.CheckAccess(ctx, tenant, subject, permission, object)
		if berr == nil && result != bitmap.Unknown {
			allowed := result == bitmap.Allow
			_ = s.Cache.Put(ctx, key, allowed, bmRevision)

			return allowed, s.zookieFor(tenant, bmRevision), false, nil
		}
	}

	sfKey := key.String() + "|" + mode.String()

	v, derr, _ := s.checkGroup.Do(sfKey, func() (any, error) {
		allowed, evalErr := s.Evaluator.Check(ctx, tenant, subject, permission, object, caveatCtx)
		if evalErr != nil {
			if s.handleDepthExceeded(ctx, tenant, evalErr) {
				return checkOutcome{allowed: false, stamp: revision}, nil
			}

			verdict, stamp, deg, err := s.degradeOrSurface(ctx, key, evalErr)
			if err != nil {
				return checkOutcome{}, err
			}

			return checkOutcome{allowed: verdict, stamp: stamp, degraded: deg}, nil
		}

		_ = s.Cache.Put(ctx, key, allowed, revision)

		return checkOutcome{allowed: allowed, stamp: revision}, nil
	})

	if derr != nil {
		return false, "", false, derr
	}

	outcome := v.(checkOutcome)

	return outcome.allowed, s.zookieFor(tenant, outcome.stamp), outcome.degraded, nil
}
