package core

import (
	"context"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// LookupResources answers spec §6's LookupResources: every object of
// resourceType on which subject holds permission. The bitmap index
// accelerates this when a materialized answer exists and the mode is
// not FULLY_CONSISTENT (spec §4.5 "for FULLY_CONSISTENT reads, the
// bitmap is bypassed"); otherwise it falls back to the graph evaluator.
func (s *Service) LookupResources(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string, mode consistency.Mode, inboundZookie string) ([]tuple.Ref, string, error) {
	if err := s.validateLookupResourcesRequest(tenant, subject, permission, resourceType); err != nil {
		return nil, "", err
	}

	mode, err := s.effectiveMode(tenant, inboundZookie, mode)
	if err != nil {
		return nil, "", err
	}

	revision, err := s.Consistency.Resolve(ctx, tenant, mode)
	if err != nil {
		return nil, "", err
	}

	if s.Bitmap != nil && !mode.IsFullyConsistent() {
		refs, bmRevision, found, berr := s.Bitmap.AccessibleResources(ctx, tenant, subject, permission, resourceType)
		if berr == nil && found {
			return refs, s.zookieFor(tenant, bmRevision), nil
		}
	}

	refs, err := s.Evaluator.LookupResources(ctx, tenant, subject, permission, resourceType)
	if err != nil {
		if s.handleDepthExceeded(ctx, tenant, err) {
			return nil, s.zookieFor(tenant, revision), nil
		}

		return nil, "", err
	}

	return refs, s.zookieFor(tenant, revision), nil
}
