// Package evaluator implements the graph walk of spec §4.3: Check,
// Expand, LookupResources and LookupSubjects all compile down to a
// traversal of the namespace rewrite algebra against live tuples. The
// evaluator itself holds no cache and no breaker state — callers
// (internal/services/core) are responsible for wrapping the Store it is
// given and for degrading to the decision cache on failure.
package evaluator

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/namespace"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/caveat"
	"github.com/LerianStudio/midaz/v3/pkg/merrors"
)

// DefaultMaxDepth bounds rewrite recursion absent an explicit override
// (spec §4.3 "depth bound, default 10").
const DefaultMaxDepth = 10

// Evaluator walks the rewrite graph for a single check/expand/lookup
// call. It is safe for concurrent use: all state lives on the call
// stack, and the visited set is cloned (never shared) across fanned-out
// branches.
type Evaluator struct {
	Store    tuple.Store
	Registry *namespace.Registry
	Caveats  *caveat.Evaluator
	MaxDepth int
}

// New builds an Evaluator. store should already be breaker-guarded by
// the caller (internal/services/guardedstore) — the evaluator treats
// any error it returns as fatal to the branch under evaluation.
func New(store tuple.Store, registry *namespace.Registry, caveats *caveat.Evaluator, maxDepth int) *Evaluator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	return &Evaluator{Store: store, Registry: registry, Caveats: caveats, MaxDepth: maxDepth}
}

// visitKey identifies one node of the rewrite traversal for cycle
// detection: a permission evaluated against one concrete object.
type visitKey struct {
	Permission string
	ObjectType string
	ObjectID   string
}

// visited is cloned (not mutated in place) whenever evaluation forks
// into independent branches (union/intersection children, a
// tuple-to-userset fan-out), per spec §4.3's "clone the visited set
// across fanned-out branches so siblings cannot falsely trip each
// other's cycle guard."
type visited map[visitKey]struct{}

func (v visited) with(k visitKey) visited {
	next := make(visited, len(v)+1)
	for existing := range v {
		next[existing] = struct{}{}
	}

	next[k] = struct{}{}

	return next
}

// Check reports whether subject holds permission on object within
// tenant. caveatCtx supplies the variables any caveat attached to a
// matching tuple may reference.
func (e *Evaluator) Check(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref, caveatCtx map[string]any) (bool, error) {
	return e.checkNode(ctx, tenant, subject, permission, object, caveatCtx, visited{}, 0)
}

func (e *Evaluator) checkNode(ctx context.Context, tenant string, subject tuple.Ref, permission string, object tuple.Ref, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	if depth > e.MaxDepth {
		return false, &merrors.DepthExceededError{Permission: permission, MaxDepth: e.MaxDepth}
	}

	key := visitKey{Permission: permission, ObjectType: object.Type, ObjectID: object.ID}
	if _, ok := seen[key]; ok {
		return false, &merrors.InternalInvariantViolatedError{Reason: "cycle detected at " + object.Type + "#" + permission}
	}

	seen = seen.with(key)

	typeDef, ok := e.Registry.TypeDef(object.Type)
	if !ok {
		return false, nil
	}

	if rw, ok := typeDef.Permissions[permission]; ok {
		return e.evalRewrite(ctx, tenant, subject, permission, rw, object, caveatCtx, seen, depth)
	}

	if _, ok := typeDef.DirectRelations[permission]; ok {
		return e.checkDirect(ctx, tenant, subject, permission, object, caveatCtx, seen, depth)
	}

	return false, nil
}

func (e *Evaluator) evalRewrite(ctx context.Context, tenant string, subject tuple.Ref, permission string, rw namespace.Rewrite, object tuple.Ref, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	switch rw.Kind {
	case namespace.KindThis:
		return e.checkDirect(ctx, tenant, subject, permission, object, caveatCtx, seen, depth)

	case namespace.KindComputedUserset:
		return e.checkNode(ctx, tenant, subject, rw.ComputedUserset, object, caveatCtx, seen, depth+1)

	case namespace.KindTupleToUserset:
		related, err := e.Store.FindRelatedObjects(ctx, tenant, object, rw.TuplesetRelation)
		if err != nil {
			return false, err
		}

		for _, r := range related {
			allowed, err := e.checkNode(ctx, tenant, subject, rw.ComputedUsersetRelation, r, caveatCtx, seen, depth+1)
			if err != nil {
				return false, err
			}

			if allowed {
				return true, nil
			}
		}

		return false, nil

	case namespace.KindUnion:
		return e.evalUnion(ctx, tenant, subject, permission, rw.Children, object, caveatCtx, seen, depth)

	case namespace.KindIntersection:
		return e.evalIntersection(ctx, tenant, subject, permission, rw.Children, object, caveatCtx, seen, depth)

	case namespace.KindExclusion:
		included, err := e.evalRewrite(ctx, tenant, subject, permission, *rw.Included, object, caveatCtx, seen, depth+1)
		if err != nil {
			return false, err
		}

		if !included {
			return false, nil
		}

		excluded, err := e.evalRewrite(ctx, tenant, subject, permission, *rw.Excluded, object, caveatCtx, seen, depth+1)
		if err != nil {
			return false, err
		}

		return !excluded, nil

	default:
		return false, nil
	}
}

// evalUnion fans children out concurrently and returns true as soon as
// one allows, cancelling the rest (spec §4.3 "Union short-circuits on
// first allow"). An error from a losing branch is discarded once any
// branch has already allowed; otherwise the first error wins.
func (e *Evaluator) evalUnion(ctx context.Context, tenant string, subject tuple.Ref, permission string, children []namespace.Rewrite, object tuple.Ref, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	if len(children) == 0 {
		return false, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	results := make([]bool, len(children))

	for i, child := range children {
		i, child := i, child

		group.Go(func() error {
			allowed, err := e.evalRewrite(gctx, tenant, subject, permission, child, object, caveatCtx, seen, depth+1)
			if err != nil {
				return err
			}

			results[i] = allowed

			return nil
		})
	}

	err := group.Wait()

	for _, allowed := range results {
		if allowed {
			return true, nil
		}
	}

	return false, err
}

// evalIntersection fans children out concurrently and returns false as
// soon as one denies. An error from a losing branch is discarded once
// any branch has already denied.
func (e *Evaluator) evalIntersection(ctx context.Context, tenant string, subject tuple.Ref, permission string, children []namespace.Rewrite, object tuple.Ref, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	if len(children) == 0 {
		return false, nil
	}

	group, gctx := errgroup.WithContext(ctx)
	results := make([]bool, len(children))

	for i, child := range children {
		i, child := i, child

		group.Go(func() error {
			allowed, err := e.evalRewrite(gctx, tenant, subject, permission, child, object, caveatCtx, seen, depth+1)
			if err != nil {
				return err
			}

			results[i] = allowed

			return nil
		})
	}

	err := group.Wait()

	for _, allowed := range results {
		if !allowed {
			return false, nil
		}
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// checkDirect walks the direct tuples carrying relation on object,
// matching subject either concretely or through a userset reference.
func (e *Evaluator) checkDirect(ctx context.Context, tenant string, subject tuple.Ref, relation string, object tuple.Ref, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	tuples, err := e.Store.GetDirectSubjects(ctx, tenant, object, relation)
	if err != nil {
		return false, err
	}

	for _, t := range tuples {
		matched, err := e.subjectMatches(ctx, tenant, subject, t, caveatCtx, seen, depth)
		if err != nil {
			return false, err
		}

		if matched {
			return true, nil
		}
	}

	return false, nil
}

func (e *Evaluator) subjectMatches(ctx context.Context, tenant string, subject tuple.Ref, t tuple.Tuple, caveatCtx map[string]any, seen visited, depth int) (bool, error) {
	if t.IsUserset() {
		allowed, err := e.checkNode(ctx, tenant, subject, t.SubjectRelation, tuple.Ref{Type: t.SubjectType, ID: t.SubjectID}, caveatCtx, seen, depth+1)
		if err != nil {
			return false, err
		}

		if !allowed {
			return false, nil
		}
	} else if t.SubjectType != subject.Type || t.SubjectID != subject.ID {
		return false, nil
	}

	if t.Caveat == nil {
		return true, nil
	}

	return e.caveatHolds(t.Caveat, caveatCtx), nil
}

func (e *Evaluator) caveatHolds(c *tuple.Caveat, caveatCtx map[string]any) bool {
	if e.Caveats == nil {
		return true
	}

	vars := make(map[string]any, len(caveatCtx)+len(c.Params))
	for k, v := range caveatCtx {
		vars[k] = v
	}

	for k, v := range c.Params {
		vars[k] = v
	}

	return e.Caveats.Evaluate(c.Expression, vars) == caveat.ResultAllow
}
