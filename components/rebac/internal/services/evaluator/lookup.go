package evaluator

import (
	"context"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// LookupResources enumerates every object of resourceType on which
// subject holds permission (spec §6 "lookup_resources(subject,
// permission, resource_type, tenant) → set of object ids"). It walks
// the rewrite graph in reverse, using the store's reverse indexes
// (FindObjectsForSubject, FindSubjectsForObjectType) instead of
// GetDirectSubjects/FindRelatedObjects.
//
// This is the graph-evaluator fallback for the path the bitmap index
// (internal/services/bitmap) exists to short-circuit; it is always
// correct but, for a subject belonging to many large groups, slower
// than a materialized answer.
func (e *Evaluator) LookupResources(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string) ([]tuple.Ref, error) {
	set, err := e.reverseNode(ctx, tenant, subject, permission, resourceType, visited{}, 0)
	if err != nil {
		return nil, err
	}

	return set.slice(), nil
}

func (e *Evaluator) reverseNode(ctx context.Context, tenant string, subject tuple.Ref, permission, resourceType string, seen visited, depth int) (refSet, error) {
	if depth > e.MaxDepth {
		return refSet{}, nil
	}

	key := visitKey{Permission: permission, ObjectType: resourceType, ObjectID: "*"}
	if _, ok := seen[key]; ok {
		return refSet{}, nil
	}

	seen = seen.with(key)

	typeDef, ok := e.Registry.TypeDef(resourceType)
	if !ok {
		return refSet{}, nil
	}

	if rw, ok := typeDef.Permissions[permission]; ok {
		return e.reverseRewrite(ctx, tenant, subject, permission, rw, resourceType, seen, depth)
	}

	if _, ok := typeDef.DirectRelations[permission]; ok {
		return e.reverseDirect(ctx, tenant, subject, permission, resourceType)
	}

	return refSet{}, nil
}

func (e *Evaluator) reverseRewrite(ctx context.Context, tenant string, subject tuple.Ref, permission string, rw namespace.Rewrite, resourceType string, seen visited, depth int) (refSet, error) {
	switch rw.Kind {
	case namespace.KindThis:
		return e.reverseDirect(ctx, tenant, subject, permission, resourceType)

	case namespace.KindComputedUserset:
		return e.reverseNode(ctx, tenant, subject, rw.ComputedUserset, resourceType, seen, depth+1)

	case namespace.KindTupleToUserset:
		if rw.TuplesetType == "" {
			// Namespace config omitted tupleset_type; this rewrite
			// cannot be reverse-walked, so it contributes nothing.
			return refSet{}, nil
		}

		// Objects of TuplesetType the subject holds ComputedUsersetRelation
		// on, then the resourceType objects whose TuplesetRelation points
		// at each of those.
		intermediates, err := e.reverseNode(ctx, tenant, subject, rw.ComputedUsersetRelation, rw.TuplesetType, seen, depth+1)
		if err != nil {
			return nil, err
		}

		out := refSet{}

		for mid := range intermediates {
			objs, err := e.Store.FindSubjectsForObjectType(ctx, tenant, rw.TuplesetRelation, resourceType, mid)
			if err != nil {
				return nil, err
			}

			for _, o := range objs {
				out.add(o)
			}
		}

		return out, nil

	case namespace.KindUnion:
		out := refSet{}

		for _, child := range rw.Children {
			sub, err := e.reverseRewrite(ctx, tenant, subject, permission, child, resourceType, seen, depth+1)
			if err != nil {
				return nil, err
			}

			out = out.union(sub)
		}

		return out, nil

	case namespace.KindIntersection:
		if len(rw.Children) == 0 {
			return refSet{}, nil
		}

		out, err := e.reverseRewrite(ctx, tenant, subject, permission, rw.Children[0], resourceType, seen, depth+1)
		if err != nil {
			return nil, err
		}

		for _, child := range rw.Children[1:] {
			sub, err := e.reverseRewrite(ctx, tenant, subject, permission, child, resourceType, seen, depth+1)
			if err != nil {
				return nil, err
			}

			out = out.intersect(sub)
		}

		return out, nil

	case namespace.KindExclusion:
		included, err := e.reverseRewrite(ctx, tenant, subject, permission, *rw.Included, resourceType, seen, depth+1)
		if err != nil {
			return nil, err
		}

		excluded, err := e.reverseRewrite(ctx, tenant, subject, permission, *rw.Excluded, resourceType, seen, depth+1)
		if err != nil {
			return nil, err
		}

		return included.subtract(excluded), nil

	default:
		return refSet{}, nil
	}
}

// reverseDirect asks the store for every object of resourceType on
// which subject holds relation, directly or through userset
// membership. The store's reverse index resolves userset membership
// itself (typically via a recursive query) so the evaluator does not
// need a second, subject-shaped traversal here.
func (e *Evaluator) reverseDirect(ctx context.Context, tenant string, subject tuple.Ref, relation, resourceType string) (refSet, error) {
	objs, err := e.Store.FindObjectsForSubject(ctx, tenant, subject, relation, resourceType)
	if err != nil {
		return nil, err
	}

	out := make(refSet, len(objs))
	for _, o := range objs {
		out.add(o)
	}

	return out, nil
}
