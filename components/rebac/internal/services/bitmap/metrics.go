package bitmap

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// QueueDepth exports the number of pending recompute jobs per tenant,
// the §4.5 queue-depth health signal.
var QueueDepth = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "rebac_bitmap_queue_depth",
		Help: "Pending bitmap recompute jobs per tenant",
	},
	[]string{"tenant"},
)

func init() {
	prometheus.MustRegister(QueueDepth)
}

// exportQueueDepth refreshes the QueueDepth gauge from the queue store.
// Called alongside the reaper sweep since both run on the same cadence
// and neither belongs on the hot CheckAccess path.
func (w *Worker) exportQueueDepth(ctx context.Context) error {
	depths, err := w.index.queue.QueueDepth(ctx)
	if err != nil {
		return err
	}

	for tenant, count := range depths {
		QueueDepth.WithLabelValues(tenant).Set(float64(count))
	}

	return nil
}
