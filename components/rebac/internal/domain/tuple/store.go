package tuple

import "context"

// Store is the authoritative persistence port for tuples and the
// per-tenant revision counter (spec §4.1). Implementations must
// serialize writes within a tenant and allocate a new revision iff the
// effective tuple set changed.
//
//go:generate mockgen --destination=store_mock.go --package=tuple . Store
type Store interface {
	// Write atomically adds and removes tuples within one tenant. It
	// returns the new revision, which only advances if the effective
	// set changed (a write that is a pure no-op — e.g. adding a tuple
	// that already exists and removing nothing — returns the current
	// revision unchanged).
	Write(ctx context.Context, tenant string, adds, removes []Tuple) (revision int64, err error)

	// GetDirectSubjects returns the direct grantees of (object,
	// relation): concrete entities and userset references alike.
	GetDirectSubjects(ctx context.Context, tenant string, object Ref, relation string) ([]Tuple, error)

	// FindRelatedObjects answers "objects O' such that (fromObject,
	// relation, O') exists" — the tupleset half of tuple-to-userset.
	FindRelatedObjects(ctx context.Context, tenant string, fromObject Ref, relation string) ([]Ref, error)

	// FindObjectsForSubject is the reverse index: objects of the given
	// type on which subject holds relation, used by the lookup_resources
	// direct-grant step and by bitmap recomputation.
	FindObjectsForSubject(ctx context.Context, tenant string, subject Ref, relation, objectType string) ([]Ref, error)

	// FindSubjectsForObjectType is the reverse-tuple-to-userset step:
	// given a relation and a target object, the set of objects of
	// fromType whose `relation` tupleset points at the given object
	// (e.g. children whose `parent` relation points at a folder).
	FindSubjectsForObjectType(ctx context.Context, tenant string, relation string, fromType string, toObject Ref) ([]Ref, error)

	// CurrentRevision returns the tenant's current revision.
	CurrentRevision(ctx context.Context, tenant string) (int64, error)

	// Read streams tuples matching filter to visit, for
	// ReadRelationships. Returning an error from visit stops iteration
	// and Read returns that error.
	Read(ctx context.Context, tenant string, filter Filter, visit func(Tuple) error) error
}
