package breaker

import (
	"github.com/prometheus/client_golang/prometheus"
)

// OpenSeconds exports how long each (tenant, operation) breaker has
// been continuously OPEN/HALF_OPEN, the §4.7 "time spent in OPEN is
// exported as a health signal" requirement. Zero for a CLOSED breaker.
var OpenSeconds = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rebac_breaker_open_seconds",
		Help: "Seconds the circuit breaker has been continuously open for a tenant/operation pair",
	},
	[]string{"tenant", "operation"},
)

func init() {
	prometheus.MustRegister(OpenSeconds)
}

// ExportMetrics refreshes OpenSeconds for every breaker the manager
// has created. Intended to be called on a short ticker by the host
// process (cmd/rebacd), not from the request path.
func (m *Manager) ExportMetrics() {
	m.mu.Lock()
	snapshot := make([]*Breaker, 0, len(m.breakers))
	for _, b := range m.breakers {
		snapshot = append(snapshot, b)
	}
	m.mu.Unlock()

	for _, b := range snapshot {
		OpenSeconds.WithLabelValues(b.tenant, b.operation).Set(b.OpenDuration().Seconds())
	}
}
