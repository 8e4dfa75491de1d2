package evaluator

import (
	"context"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// refSet is a dedup-by-value accumulator for tuple.Ref, used by Expand
// and LookupResources.
type refSet map[tuple.Ref]struct{}

func (s refSet) add(r tuple.Ref)        { s[r] = struct{}{} }
func (s refSet) has(r tuple.Ref) bool   { _, ok := s[r]; return ok }
func (s refSet) slice() []tuple.Ref {
	out := make([]tuple.Ref, 0, len(s))
	for r := range s {
		out = append(out, r)
	}

	return out
}

func (s refSet) intersect(other refSet) refSet {
	out := refSet{}
	for r := range s {
		if other.has(r) {
			out.add(r)
		}
	}

	return out
}

func (s refSet) subtract(other refSet) refSet {
	out := refSet{}
	for r := range s {
		if !other.has(r) {
			out.add(r)
		}
	}

	return out
}

func (s refSet) union(other refSet) refSet {
	out := make(refSet, len(s)+len(other))
	for r := range s {
		out.add(r)
	}

	for r := range other {
		out.add(r)
	}

	return out
}

// Expand enumerates every concrete subject that holds permission on
// object (spec §6 "expand(permission, object, tenant) → set of subject
// refs"). Userset references encountered along the way are resolved
// recursively rather than returned as-is — the result never contains a
// subject with a non-empty relation.
//
// LookupSubjects is the same traversal under the name the external API
// documents separately (spec §6 note: "same as expand, retained as a
// distinct name for the API").
func (e *Evaluator) Expand(ctx context.Context, tenant string, permission string, object tuple.Ref) ([]tuple.Ref, error) {
	set, err := e.expandNode(ctx, tenant, permission, object, visited{}, 0)
	if err != nil {
		return nil, err
	}

	return set.slice(), nil
}

// LookupSubjects is an alias for Expand (spec §6).
func (e *Evaluator) LookupSubjects(ctx context.Context, tenant string, permission string, object tuple.Ref) ([]tuple.Ref, error) {
	return e.Expand(ctx, tenant, permission, object)
}

func (e *Evaluator) expandNode(ctx context.Context, tenant, permission string, object tuple.Ref, seen visited, depth int) (refSet, error) {
	if depth > e.MaxDepth {
		return nil, &merrors.DepthExceededError{Permission: permission, MaxDepth: e.MaxDepth}
	}

	key := visitKey{Permission: permission, ObjectType: object.Type, ObjectID: object.ID}
	if _, ok := seen[key]; ok {
		return refSet{}, nil
	}

	seen = seen.with(key)

	typeDef, ok := e.Registry.TypeDef(object.Type)
	if !ok {
		return refSet{}, nil
	}

	if rw, ok := typeDef.Permissions[permission]; ok {
		return e.expandRewrite(ctx, tenant, permission, rw, object, seen, depth)
	}

	if _, ok := typeDef.DirectRelations[permission]; ok {
		return e.expandDirect(ctx, tenant, permission, object, seen, depth)
	}

	return refSet{}, nil
}

func (e *Evaluator) expandRewrite(ctx context.Context, tenant, permission string, rw namespace.Rewrite, object tuple.Ref, seen visited, depth int) (refSet, error) {
	switch rw.Kind {
	case namespace.KindThis:
		return e.expandDirect(ctx, tenant, permission, object, seen, depth)

	case namespace.KindComputedUserset:
		return e.expandNode(ctx, tenant, rw.ComputedUserset, object, seen, depth+1)

	case namespace.KindTupleToUserset:
		related, err := e.Store.FindRelatedObjects(ctx, tenant, object, rw.TuplesetRelation)
		if err != nil {
			return nil, err
		}

		out := refSet{}

		for _, r := range related {
			sub, err := e.expandNode(ctx, tenant, rw.ComputedUsersetRelation, r, seen, depth+1)
			if err != nil {
				return nil, err
			}

			out = out.union(sub)
		}

		return out, nil

	case namespace.KindUnion:
		out := refSet{}

		for _, child := range rw.Children {
			sub, err := e.expandRewrite(ctx, tenant, permission, child, object, seen, depth+1)
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

		out, err := e.expandRewrite(ctx, tenant, permission, rw.Children[0], object, seen, depth+1)
		if err != nil {
			return nil, err
		}

		for _, child := range rw.Children[1:] {
			sub, err := e.expandRewrite(ctx, tenant, permission, child, object, seen, depth+1)
			if err != nil {
				return nil, err
			}

			out = out.intersect(sub)
		}

		return out, nil

	case namespace.KindExclusion:
		included, err := e.expandRewrite(ctx, tenant, permission, *rw.Included, object, seen, depth+1)
		if err != nil {
			return nil, err
		}

		excluded, err := e.expandRewrite(ctx, tenant, permission, *rw.Excluded, object, seen, depth+1)
		if err != nil {
			return nil, err
		}

		return included.subtract(excluded), nil

	default:
		return refSet{}, nil
	}
}

func (e *Evaluator) expandDirect(ctx context.Context, tenant, relation string, object tuple.Ref, seen visited, depth int) (refSet, error) {
	tuples, err := e.Store.GetDirectSubjects(ctx, tenant, object, relation)
	if err != nil {
		return nil, err
	}

	out := refSet{}

	for _, t := range tuples {
		if t.Caveat != nil {
			// A caveat needs request-time context to decide; Expand has
			// none, so a caveat-guarded grant is conservatively excluded
			// from the enumerated set rather than assumed allowed.
			continue
		}

		if !t.IsUserset() {
			out.add(t.Subject())
			continue
		}

		sub, err := e.expandNode(ctx, tenant, t.SubjectRelation, tuple.Ref{Type: t.SubjectType, ID: t.SubjectID}, seen, depth+1)
		if err != nil {
			return nil, err
		}

		out = out.union(sub)
	}

	return out, nil
}
