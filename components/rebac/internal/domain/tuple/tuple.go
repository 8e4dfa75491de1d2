// Package tuple holds the core relation-tuple data model (spec §3) and
// the TupleStore port it is read and written through (spec §4.1).
package tuple

import "time"

// Ref identifies an entity: a (type, id) pair. Types are bounded,
// namespace-registered strings (e.g. "file", "user", "group").
type Ref struct {
	Type string
	ID   string
}

func (r Ref) String() string {
	return r.Type + ":" + r.ID
}

// IsZero reports whether the ref was never populated.
func (r Ref) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// Tuple is the atomic authorization fact: subject has relation on
// object, optionally scoped to a userset via SubjectRelation and
// guarded by a caveat.
type Tuple struct {
	Tenant string

	ObjectType string
	ObjectID   string

	Relation string

	SubjectType string
	SubjectID   string
	// SubjectRelation, if non-empty, means the grantee is "every entity
	// with relation R on (SubjectType, SubjectID)" — a userset
	// reference rather than a concrete subject.
	SubjectRelation string

	// Caveat is an optional compiled-condition reference evaluated at
	// check time against the request's caveat context. Empty means
	// unconditional.
	Caveat *Caveat

	CreatedAt time.Time
}

// Caveat is a structured, context-free condition attached to a tuple.
// The expression language is CEL (see internal/services/caveat); the
// store treats it as opaque bytes plus a name for attribution.
type Caveat struct {
	Name       string
	Expression string
	Params     map[string]any
}

// Object returns the tuple's object as a Ref.
func (t Tuple) Object() Ref { return Ref{Type: t.ObjectType, ID: t.ObjectID} }

// Subject returns the tuple's subject as a Ref. If SubjectRelation is
// set this Ref denotes a userset, not a concrete entity.
func (t Tuple) Subject() Ref { return Ref{Type: t.SubjectType, ID: t.SubjectID} }

// IsUserset reports whether the subject is an indirect userset
// reference rather than a concrete entity.
func (t Tuple) IsUserset() bool { return t.SubjectRelation != "" }

// Key returns the tuple's unique key per the data-model invariant:
// (tenant, object_type, object_id, relation, subject_type, subject_id,
// subject_relation).
func (t Tuple) Key() Key {
	return Key{
		Tenant:          t.Tenant,
		ObjectType:      t.ObjectType,
		ObjectID:        t.ObjectID,
		Relation:        t.Relation,
		SubjectType:     t.SubjectType,
		SubjectID:       t.SubjectID,
		SubjectRelation: t.SubjectRelation,
	}
}

// Key is the comparable unique-key projection of a Tuple, usable as a
// map key for dedup.
type Key struct {
	Tenant          string
	ObjectType      string
	ObjectID        string
	Relation        string
	SubjectType     string
	SubjectID       string
	SubjectRelation string
}

// Filter narrows a ReadRelationships / DeleteRelationships request.
// Zero-value fields are wildcards.
type Filter struct {
	ObjectType  string
	ObjectID    string
	Relation    string
	SubjectType string
	SubjectID   string
}
