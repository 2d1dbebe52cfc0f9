package events

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// JournalPublisher wraps serialized domain events in an envelope, stamps the
// current trace context, and appends them to the journal for the relay.
type JournalPublisher struct {
	journal *Journal
}

func NewJournalPublisher(journal *Journal) *JournalPublisher {
	return &JournalPublisher{journal: journal}
}

func (p *JournalPublisher) Publish(ctx context.Context, aggregateID, eventType string, payload []byte) {
	e := NewEvent(aggregateID, eventType, payload)
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	e.Traceparent = carrier["traceparent"]
	p.journal.Append(e)
}
