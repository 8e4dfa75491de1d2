package consistency

// Mode selects how fresh a read must be, per spec §4.6.
type Mode struct {
	kind     modeKind
	minRevision int64
}

type modeKind int

const (
	kindMinimizeLatency modeKind = iota
	kindAtLeastAsFresh
	kindFullyConsistent
)

// MinimizeLatency: cache read+write, store read only on miss, no staleness bound.
func MinimizeLatency() Mode { return Mode{kind: kindMinimizeLatency} }

// AtLeastAsFresh: cache read only if entry.stamp >= minRevision.
func AtLeastAsFresh(minRevision int64) Mode {
	return Mode{kind: kindAtLeastAsFresh, minRevision: minRevision}
}

// FullyConsistent: bypass cache entirely, always read the store.
func FullyConsistent() Mode { return Mode{kind: kindFullyConsistent} }

// IsMinimizeLatency reports whether m is MINIMIZE_LATENCY.
func (m Mode) IsMinimizeLatency() bool { return m.kind == kindMinimizeLatency }

// IsAtLeastAsFresh reports whether m is AT_LEAST_AS_FRESH, and if so
// its minimum revision.
func (m Mode) IsAtLeastAsFresh() (int64, bool) {
	return m.minRevision, m.kind == kindAtLeastAsFresh
}

// IsFullyConsistent reports whether m is FULLY_CONSISTENT.
func (m Mode) IsFullyConsistent() bool { return m.kind == kindFullyConsistent }

// AllowsCacheRead reports whether this mode may ever be satisfied from
// the decision cache.
func (m Mode) AllowsCacheRead() bool { return m.kind != kindFullyConsistent }

// MinRevisionForCache returns the minimum acceptable cache stamp for
// this mode: 0 for MINIMIZE_LATENCY (any stamp is fine), the
// configured floor for AT_LEAST_AS_FRESH. Callers must check
// AllowsCacheRead first.
func (m Mode) MinRevisionForCache() int64 {
	if m.kind == kindAtLeastAsFresh {
		return m.minRevision
	}

	return 0
}

// String renders the mode for logs/events.
func (m Mode) String() string {
	switch m.kind {
	case kindMinimizeLatency:
		return "MINIMIZE_LATENCY"
	case kindAtLeastAsFresh:
		return "AT_LEAST_AS_FRESH"
	case kindFullyConsistent:
		return "FULLY_CONSISTENT"
	default:
		return "UNKNOWN"
	}
}
