package namespace

// AliasesOf returns every permission on def whose value for a given
// (subject, object) pair is guaranteed to move in lockstep with the
// direct relation when a single tuple carrying relation is added or
// removed — i.e. the permission's rewrite graph reaches relation only
// through This/ComputedUserset/Union edges. Permissions reached through
// Intersection, Exclusion, or TupleToUserset are excluded: those can
// depend on more than the one edge just written, so a single-edge
// write-through update is not safe for them (spec §4.5's bitmap
// write-through path only covers the safe case; anything else needs a
// full recompute).
//
// This powers the bitmap index's write-through fan-out
// (internal/services/core's write path): on a direct tuple write, every
// name AliasesOf returns gets its bit flipped too, for free.
func AliasesOf(def TypeDef, relation string) []string {
	var out []string

	for name, rw := range def.Permissions {
		if reachesByAlias(def, rw, relation, name, 0) {
			out = append(out, name)
		}
	}

	return out
}

// maxAliasDepth bounds the ComputedUserset chase; the registry already
// rejects true cycles at load time, this is just a defensive backstop.
const maxAliasDepth = 32

func reachesByAlias(def TypeDef, rw Rewrite, relation, ownPermissionName string, depth int) bool {
	if depth > maxAliasDepth {
		return false
	}

	switch rw.Kind {
	case KindThis:
		return ownPermissionName == relation
	case KindComputedUserset:
		if rw.ComputedUserset == relation {
			return true
		}

		target, ok := def.Permissions[rw.ComputedUserset]
		if !ok {
			return false
		}

		return reachesByAlias(def, target, relation, rw.ComputedUserset, depth+1)
	case KindUnion:
		for _, child := range rw.Children {
			if reachesByAlias(def, child, relation, ownPermissionName, depth+1) {
				return true
			}
		}

		return false
	default:
		return false
	}
}
