package cache

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// memoryTier is the in-process front tier: a bounded LRU guarded by a
// generation counter per tenant. Entries are keyed by the generation
// current at write time, so a tenant invalidation need not rewrite or
// scan every entry for correctness — it only needs to make stale
// entries unreachable, which bumping the generation does on its own.
// The sweep in invalidateTenant reclaims their space promptly instead
// of waiting on natural LRU eviction.
type memoryTier struct {
	cache *lru.Cache[string, Entry]

	mu          sync.RWMutex
	generations map[string]uint64
}

func newMemoryTier(size int) (*memoryTier, error) {
	if size <= 0 {
		size = 10_000
	}

	c, err := lru.New[string, Entry](size)
	if err != nil {
		return nil, err
	}

	return &memoryTier{cache: c, generations: map[string]uint64{}}, nil
}

func (m *memoryTier) generation(tenant string) uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.generations[tenant]
}

func (m *memoryTier) get(key Key) (Entry, bool) {
	gen := m.generation(key.Tenant)

	entry, ok := m.cache.Get(key.versioned(gen))
	if !ok {
		return Entry{}, false
	}

	return entry, true
}

func (m *memoryTier) put(key Key, entry Entry) {
	gen := m.generation(key.Tenant)
	m.cache.Add(key.versioned(gen), entry)
}

// invalidateTenant bumps the tenant's generation (making every entry
// written under the old generation unreachable) and sweeps the LRU to
// free their slots immediately.
func (m *memoryTier) invalidateTenant(tenant string) {
	m.mu.Lock()
	m.generations[tenant]++
	m.mu.Unlock()

	prefix := tenant + ":"

	for _, k := range m.cache.Keys() {
		if strings.HasPrefix(k, prefix) {
			m.cache.Remove(k)
		}
	}
}

// setGeneration aligns the in-process generation with one observed
// from the shared tier (e.g. on a pub/sub invalidation broadcast from
// another process), without re-sweeping entries this process already
// evicted for a reason of its own.
func (m *memoryTier) setGeneration(tenant string, generation uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if generation > m.generations[tenant] {
		m.generations[tenant] = generation
	}
}
