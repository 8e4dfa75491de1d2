package events

import (
	"time"

	"github.com/LerianStudio/midaz/v3/components/rebac/internal/services/events"
)

// eventDocument is the MongoDB-stored shape of an events.Event, one
// document per published notification in the "rebac_events"
// collection. Fields unused by a given Kind are simply absent/zero.
type eventDocument struct {
	Kind       string    `bson:"kind"`
	Tenant     string    `bson:"tenant"`
	Revision   int64     `bson:"revision,omitempty"`
	Operation  string    `bson:"operation,omitempty"`
	CacheKey   string    `bson:"cache_key,omitempty"`
	DurationMs int64     `bson:"duration_ms,omitempty"`
	Requested  int64     `bson:"requested,omitempty"`
	Current    int64     `bson:"current,omitempty"`
	ElapsedMs  int64     `bson:"elapsed_ms,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

func fromEvent(e events.Event) eventDocument {
	occurredAt := e.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	return eventDocument{
		Kind:       string(e.Kind),
		Tenant:     e.Tenant,
		Revision:   e.Revision,
		Operation:  e.Operation,
		CacheKey:   e.CacheKey,
		DurationMs: e.Duration.Milliseconds(),
		Requested:  e.Requested,
		Current:    e.Current,
		ElapsedMs:  e.ElapsedMs,
		OccurredAt: occurredAt,
	}
}
