package rabbitmq

import (
	"context"

	"github.com/LerianStudio/midaz/v3/common"
)

// Waker is the subset of bitmap.Worker a Consumer needs: a non-blocking
// nudge to drain the queue now instead of waiting out the rest of the
// current poll interval.
type Waker interface {
	Wake()
}

// Consumer drains the recompute-announce fanout queue and wakes workers
// on delivery. It never acts on the announcement's contents — the
// Postgres queue row is the source of truth — so a lost or duplicated
// message only costs a missed or redundant early wake, never
// correctness.
type Consumer struct {
	conn    *Connection
	workers []Waker
}

// NewConsumer builds a Consumer that wakes every given worker on each
// announcement delivered to this process' queue.
func NewConsumer(conn *Connection, workers ...Waker) *Consumer {
	return &Consumer{conn: conn, workers: workers}
}

// Run consumes deliveries until ctx is cancelled or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	logger := common.NewLoggerFromContext(ctx)

	ch, err := c.conn.GetChannel(ctx)
	if err != nil {
		return err
	}

	deliveries, err := ch.Consume(queueName, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-deliveries:
			if !ok {
				logger.Warnln("bitmap: rabbitmq delivery channel closed")
				return nil
			}

			for _, w := range c.workers {
				w.Wake()
			}
		}
	}
}
