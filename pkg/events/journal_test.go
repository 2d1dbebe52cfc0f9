package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalDrainPreservesOrder(t *testing.T) {
	j := NewJournal()
	j.Append(NewEvent("1", "order.created", nil))
	j.Append(NewEvent("2", "order.created", nil))
	j.Append(NewEvent("3", "order.created", nil))

	batch := j.Drain(2)
	require.Len(t, batch, 2)
	assert.Equal(t, "1", batch[0].AggregateID)
	assert.Equal(t, "2", batch[1].AggregateID)
	assert.Equal(t, 1, j.Len())

	rest := j.Drain(10)
	require.Len(t, rest, 1)
	assert.Equal(t, "3", rest[0].AggregateID)
	assert.Nil(t, j.Drain(10))
}

func TestJournalRequeuePutsEventFirst(t *testing.T) {
	j := NewJournal()
	j.Append(NewEvent("1", "order.created", nil))
	j.Append(NewEvent("2", "order.created", nil))

	batch := j.Drain(1)
	require.Len(t, batch, 1)
	j.Requeue(batch[0])

	next := j.Drain(2)
	require.Len(t, next, 2)
	assert.Equal(t, "1", next[0].AggregateID)
	assert.Equal(t, 1, next[0].RetryCount)
	assert.Equal(t, "2", next[1].AggregateID)
}

func TestNewEventAssignsEnvelope(t *testing.T) {
	e := NewEvent("12", "stock.adjusted", []byte(`{}`))
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, "12", e.AggregateID)
	assert.Equal(t, "stock.adjusted", e.Type)
	assert.False(t, e.OccurredAt.IsZero())
}
