package breaker

import "sync"

// Operation classes guarded by the breaker (spec §4.7).
const (
	OpTupleStoreRead  = "tuple_store_read"
	OpTupleStoreWrite = "tuple_store_write"
)

// Manager owns one Breaker per (tenant, operation) pair, created
// lazily. A single lock guards the map; each Breaker has its own lock
// for the hot path, per §5 "Circuit-breaker state uses a single lock
// per breaker."
type Manager struct {
	cfg      Config
	listener StateChangeListener

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewManager builds a Manager with the given config and optional
// listener (nil is fine).
func NewManager(cfg Config, listener StateChangeListener) *Manager {
	return &Manager{
		cfg:      cfg,
		listener: listener,
		breakers: map[string]*Breaker{},
	}
}

// Get returns the breaker for (tenant, operation), creating it on
// first use.
func (m *Manager) Get(tenant, operation string) *Breaker {
	key := tenant + "\x00" + operation

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.breakers[key]
	if !ok {
		b = New(tenant, operation, m.cfg, m.listener)
		m.breakers[key] = b
	}

	return b
}
