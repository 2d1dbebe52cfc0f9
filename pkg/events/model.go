package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          string
	AggregateID string
	Type        string
	Payload     []byte
	Headers     map[string]string
	Traceparent string
	OccurredAt  time.Time
	RetryCount  int
}

// NewEvent assigns a fresh envelope id and timestamp around a serialized
// domain event.
func NewEvent(aggregateID, eventType string, payload []byte) Event {
	return Event{
		ID:          uuid.NewString(),
		AggregateID: aggregateID,
		Type:        eventType,
		Payload:     payload,
		OccurredAt:  time.Now().UTC(),
	}
}
