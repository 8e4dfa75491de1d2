// Package namespace holds the per-object-type rewrite schema (spec
// §3, §4.2): a small tagged algebra over direct relations and
// permission computations, pure and in-memory once loaded.
package namespace

// Rewrite is the tagged algebra a permission's definition compiles to.
// Exactly one of the fields below is populated, selected by Kind.
type Rewrite struct {
	Kind RewriteKind

	// This has no payload: the union of all direct tuples carrying the
	// relation this rewrite is attached to.

	// ComputedUserset names another permission on the same object.
	ComputedUserset string

	// TupleToUserset walks TuplesetRelation on the object, then checks
	// ComputedUsersetRelation on each related object returned.
	// TuplesetType is the object type reached by TuplesetRelation (e.g.
	// "folder" for a doc's "parent" relation) — needed by the reverse
	// walk (lookup_resources) to know which type to search.
	TuplesetRelation        string
	ComputedUsersetRelation string
	TuplesetType            string

	// Union / Intersection combine children with set semantics.
	Children []Rewrite

	// Exclusion subtracts Excluded from Included.
	Included *Rewrite
	Excluded *Rewrite
}

// RewriteKind tags which variant of the algebra a Rewrite is.
type RewriteKind int

const (
	KindThis RewriteKind = iota
	KindComputedUserset
	KindTupleToUserset
	KindUnion
	KindIntersection
	KindExclusion
)

// This builds a This rewrite.
func This() Rewrite { return Rewrite{Kind: KindThis} }

// ComputedUsersetOf builds a ComputedUserset rewrite aliasing another
// permission on the same object.
func ComputedUsersetOf(relation string) Rewrite {
	return Rewrite{Kind: KindComputedUserset, ComputedUserset: relation}
}

// TupleToUsersetOf builds a TupleToUserset rewrite. tuplesetType is the
// object type reached by following tuplesetRelation from the subject
// object (e.g. "folder" for a document's "parent" relation).
func TupleToUsersetOf(tuplesetRelation, computedUsersetRelation, tuplesetType string) Rewrite {
	return Rewrite{
		Kind:                    KindTupleToUserset,
		TuplesetRelation:        tuplesetRelation,
		ComputedUsersetRelation: computedUsersetRelation,
		TuplesetType:            tuplesetType,
	}
}

// UnionOf builds a Union rewrite over its children.
func UnionOf(children ...Rewrite) Rewrite {
	return Rewrite{Kind: KindUnion, Children: children}
}

// IntersectionOf builds an Intersection rewrite over its children.
func IntersectionOf(children ...Rewrite) Rewrite {
	return Rewrite{Kind: KindIntersection, Children: children}
}

// ExclusionOf builds an Exclusion rewrite: included minus excluded.
func ExclusionOf(included, excluded Rewrite) Rewrite {
	return Rewrite{Kind: KindExclusion, Included: &included, Excluded: &excluded}
}
