// Package events is the MongoDB-backed events.Publisher (spec §6),
// grounded on components/audit/internal/adapters/mongodb/audit's
// tracer-span/collection pattern.
package events

import (
	"context"
	"strings"

	"github.com/LerianStudio/midaz/v3/common"
	"github.com/LerianStudio/midaz/v3/common/mmongo"
	"github.com/LerianStudio/midaz/v3/common/mopentelemetry"
	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/events"
)

const collectionName = "rebac_events"

// Publisher records events into a MongoDB collection.
type Publisher struct {
	connection *mmongo.MongoConnection
}

// New returns a Publisher using the given MongoDB connection.
func New(mc *mmongo.MongoConnection) *Publisher {
	return &Publisher{connection: mc}
}

var _ events.Publisher = (*Publisher)(nil)

// Publish implements events.Publisher.
func (p *Publisher) Publish(ctx context.Context, event events.Event) error {
	tracer := common.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "mongodb.events.publish")
	defer span.End()

	db, err := p.connection.GetDB(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)
		return err
	}

	coll := db.Database(strings.ToLower(p.connection.Database)).Collection(collectionName)

	if _, err := coll.InsertOne(ctx, fromEvent(event)); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert event", err)
		return err
	}

	return nil
}
