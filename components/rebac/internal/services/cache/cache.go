package cache

import (
	"context"
	"time"
)

// Cache is the decision cache facade: an in-process tier always
// present, a shared tier that may be nil. A nil shared tier is the
// spec's "null implementation... valid and the default when no
// backing store is configured" — every method below already treats it
// as an unconditional miss / no-op.
type Cache struct {
	memory *memoryTier
	shared *SharedTier
	ttl    time.Duration
}

// New builds a Cache. inProcessSize bounds the LRU tier; shared may be
// nil to run memory-only. ttl is the default entry lifetime applied on
// Put.
func New(inProcessSize int, shared *SharedTier, ttl time.Duration) (*Cache, error) {
	mem, err := newMemoryTier(inProcessSize)
	if err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return &Cache{memory: mem, shared: shared, ttl: ttl}, nil
}

// Get looks up key, treating the result as a miss if its revision
// stamp is older than minRevision (pass 0 to accept any stamp) or if
// it is past TTL. The in-process tier is consulted first; a miss there
// falls through to the shared tier, which — on hit — is used to warm
// the in-process tier before returning.
func (c *Cache) Get(ctx context.Context, key Key, minRevision int64) (Entry, bool, error) {
	now := time.Now()

	if entry, ok := c.memory.get(key); ok {
		if entry.expired(now) || !entry.satisfies(minRevision) {
			return Entry{}, false, nil
		}

		return entry, true, nil
	}

	if c.shared == nil {
		return Entry{}, false, nil
	}

	entry, ok, err := c.shared.get(ctx, key)
	if err != nil || !ok {
		return Entry{}, false, err
	}

	if entry.expired(now) || !entry.satisfies(minRevision) {
		return Entry{}, false, nil
	}

	c.memory.put(key, entry)

	return entry, true, nil
}

// Put stores verdict under key, stamped with revision, overwriting any
// existing entry (spec §4.4 "put(key, verdict, stamp, ttl) —
// overwrites").
func (c *Cache) Put(ctx context.Context, key Key, verdict bool, revision int64) error {
	entry := Entry{Verdict: verdict, Stamp: revision, CreatedAt: time.Now(), TTL: c.ttl}

	c.memory.put(key, entry)

	if c.shared == nil {
		return nil
	}

	return c.shared.put(ctx, key, entry, c.ttl)
}

// InvalidateTenant marks every cached entry for tenant as miss-on-next-
// read by bumping its generation (spec §4.4 "either by bumping a
// per-tenant generation or by pattern delete"). Idempotent: invoking it
// repeatedly only ever advances the generation further.
func (c *Cache) InvalidateTenant(ctx context.Context, tenant string) error {
	c.memory.invalidateTenant(tenant)

	if c.shared == nil {
		return nil
	}

	return c.shared.invalidateTenant(ctx, tenant)
}

// AdoptInvalidation applies a generation bump observed from the shared
// tier's pub/sub broadcast (originating from another process' call to
// InvalidateTenant) to this process' in-process tier.
func (c *Cache) AdoptInvalidation(tenant string, generation uint64) {
	c.memory.setGeneration(tenant, generation)

	prefixLen := len(tenant) + 1

	for _, k := range c.memory.cache.Keys() {
		if len(k) > prefixLen && k[:prefixLen] == tenant+":" {
			c.memory.cache.Remove(k)
		}
	}
}
