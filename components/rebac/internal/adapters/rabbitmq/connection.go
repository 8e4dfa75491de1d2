// Package rabbitmq is the bitmap recompute queue's announce/consume
// side (spec §4.5's additions: "announced over RabbitMQ... Postgres row
// remains the source of truth"). The connection wrapper mirrors
// common/mrabbitmq.RabbitMQConnection's shape, adapted to amqp091-go —
// the library this repo's go.mod actually carries, rather than the
// deprecated streadway/amqp the ledger component's copy still uses.
package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/LerianStudio/midaz/v3/common"
)

const (
	exchangeName = "rebac.bitmap.recompute"
	queueName    = "rebac.bitmap.recompute.workers"
)

// Connection is a hub which deals with a single rabbitmq connection and
// channel, declaring the fanout exchange and work queue the bitmap
// announce/consume pair uses.
type Connection struct {
	URL string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// GetChannel returns the connection's channel, dialing and declaring
// topology on first use.
func (c *Connection) GetChannel(ctx context.Context) (*amqp.Channel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.channel != nil && !c.channel.IsClosed() {
		return c.channel, nil
	}

	logger := common.NewLoggerFromContext(ctx)
	logger.Info("Connecting to rabbitmq...")

	conn, err := amqp.Dial(c.URL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq: bind queue: %w", err)
	}

	logger.Info("Connected to rabbitmq ✅")

	c.conn = conn
	c.channel = ch

	return ch, nil
}

// Close releases the underlying connection, if open.
func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	return c.conn.Close()
}
