package core

import (
	"context"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/consistency"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// ExpandPermission answers spec §6's ExpandPermission: the full set of
// concrete subjects holding permission on object. The bitmap index does
// not accelerate this path (it only materializes subject-keyed answers,
// not object-keyed ones), so this always evaluates live, respecting the
// resolved consistency mode only to the extent that it gates a
// bounded wait on the tenant revision before reading.
func (s *Service) ExpandPermission(ctx context.Context, tenant, permission string, object tuple.Ref, mode consistency.Mode, inboundZookie string) ([]tuple.Ref, string, error) {
	if err := s.validateObjectPermissionRequest(tenant, permission, object.Type); err != nil {
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

	subjects, err := s.Evaluator.Expand(ctx, tenant, permission, object)
	if err != nil {
		if s.handleDepthExceeded(ctx, tenant, err) {
			return nil, s.zookieFor(tenant, revision), nil
		}

		return nil, "", err
	}

	return subjects, s.zookieFor(tenant, revision), nil
}

// LookupSubjects is the same traversal under the name spec §6
// documents as a distinct API entry point.
func (s *Service) LookupSubjects(ctx context.Context, tenant, permission string, object tuple.Ref, mode consistency.Mode, inboundZookie string) ([]tuple.Ref, string, error) {
	return s.ExpandPermission(ctx, tenant, permission, object, mode, inboundZookie)
}
