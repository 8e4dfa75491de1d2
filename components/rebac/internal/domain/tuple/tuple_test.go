package tuple

import "testing"

func TestRefString(t *testing.T) {
	r := Ref{Type: "doc", ID: "1"}
	if got, want := r.String(), "doc:1"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestRefIsZero(t *testing.T) {
	if !(Ref{}).IsZero() {
		t.Fatal("zero-value Ref reported non-zero")
	}

	if (Ref{Type: "doc"}).IsZero() {
		t.Fatal("Ref with a Type reported zero")
	}
}

func TestTupleIsUserset(t *testing.T) {
	direct := Tuple{SubjectType: "user", SubjectID: "1"}
	if direct.IsUserset() {
		t.Fatal("direct subject reported as userset")
	}

	userset := Tuple{SubjectType: "group", SubjectID: "eng", SubjectRelation: "member"}
	if !userset.IsUserset() {
		t.Fatal("SubjectRelation set but IsUserset() returned false")
	}
}

func TestTupleObjectAndSubject(t *testing.T) {
	tp := Tuple{
		ObjectType:  "doc",
		ObjectID:    "1",
		SubjectType: "user",
		SubjectID:   "alice",
	}

	if got, want := tp.Object(), (Ref{Type: "doc", ID: "1"}); got != want {
		t.Fatalf("Object() = %+v, want %+v", got, want)
	}

	if got, want := tp.Subject(), (Ref{Type: "user", ID: "alice"}); got != want {
		t.Fatalf("Subject() = %+v, want %+v", got, want)
	}
}

func TestTupleKeyIgnoresCaveatAndTimestamps(t *testing.T) {
	base := Tuple{
		Tenant:     "acme",
		ObjectType: "doc",
		ObjectID:   "1",
		Relation:   "viewer",
		SubjectType: "user",
		SubjectID:   "alice",
	}

	withCaveat := base
	withCaveat.Caveat = &Caveat{Name: "geo", Expression: `ip.inRange("10.0.0.0/8")`}

	if base.Key() != withCaveat.Key() {
		t.Fatal("Key() differed between otherwise-identical tuples differing only by Caveat")
	}
}

func TestKeyDistinguishesUserset(t *testing.T) {
	direct := Tuple{Tenant: "acme", ObjectType: "doc", ObjectID: "1", Relation: "viewer", SubjectType: "user", SubjectID: "alice"}
	userset := direct
	userset.SubjectRelation = "member"

	if direct.Key() == userset.Key() {
		t.Fatal("Key() treated a direct subject and a userset reference as equal")
	}
}
