package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mopentelemetry"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/bitmap"
)

// announcement is the wire shape published to the recompute fanout
// exchange — just enough for a consumer to decide whether to wake, not
// a copy of the job worth acting on directly (the Postgres queue row
// remains authoritative).
type announcement struct {
	JobID        string `msgpack:"job_id"`
	Tenant       string `msgpack:"tenant"`
	Permission   string `msgpack:"permission"`
	ResourceType string `msgpack:"resource_type"`
}

// Announcer publishes a best-effort fanout notification per
// bitmap.Index.EnqueueRecompute call, implementing bitmap.Announcer.
type Announcer struct {
	conn *Connection
}

// NewAnnouncer builds an Announcer bound to conn.
func NewAnnouncer(conn *Connection) *Announcer {
	return &Announcer{conn: conn}
}

var _ bitmap.Announcer = (*Announcer)(nil)

// Announce implements bitmap.Announcer.
func (a *Announcer) Announce(ctx context.Context, job bitmap.Job) error {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "rabbitmq.bitmap_announcer.announce")
	defer span.End()

	ch, err := a.conn.GetChannel(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get rabbitmq channel", err)
		return err
	}

	body, err := msgpack.Marshal(announcement{
		JobID:        job.ID,
		Tenant:       job.Tenant,
		Permission:   job.Permission,
		ResourceType: job.ResourceType,
	})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to encode announcement", err)
		return err
	}

	err = ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType: "application/msgpack",
		Body:        body,
	})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to publish announcement", err)
	}

	return err
}
