// Package cache implements the two-tier decision cache of spec §4.4:
// an in-process LRU (hashicorp/golang-lru/v2) in front of an optional
// shared Redis tier, keyed by (subject, permission, object, tenant) and
// stamped with the tenant revision observed at write time so a reader
// can enforce the consistency mode's staleness floor.
package cache

import (
	"strconv"
	"strings"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/domain/tuple"
)

// Key is the 4-tuple a verdict is cached under.
type Key struct {
	Tenant     string
	Subject    tuple.Ref
	Permission string
	Object     tuple.Ref
}

// String renders the key without generation scoping — suitable as a
// singleflight coalescing key for concurrent callers asking the exact
// same question, not as a cache storage key (use versioned/redisKey
// for that, which are generation-aware).
func (k Key) String() string {
	return k.Tenant + ":" + k.Subject.String() + ":" + k.Permission + ":" + k.Object.String()
}

// versioned renders the key scoped to a tenant generation, the
// namespacing scheme spec §4.4's additions settled on:
// "{tenant}:{generation}:{subject}:{permission}:{object}".
func (k Key) versioned(generation uint64) string {
	var b strings.Builder

	b.WriteString(k.Tenant)
	b.WriteByte(':')
	b.WriteString(strconv.FormatUint(generation, 10))
	b.WriteByte(':')
	b.WriteString(k.Subject.String())
	b.WriteByte(':')
	b.WriteString(k.Permission)
	b.WriteByte(':')
	b.WriteString(k.Object.String())

	return b.String()
}

// redisKey renders the key with the "rebac:" namespace prefix the
// shared tier uses.
func (k Key) redisKey(generation uint64) string {
	return "rebac:" + k.versioned(generation)
}
