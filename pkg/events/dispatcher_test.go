package events

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	msgs []kafka.Message
	fail error
}

func (f *fakeProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.fail != nil {
		return f.fail
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func TestDispatchBuildsMessage(t *testing.T) {
	producer := &fakeProducer{}
	d := NewDispatcher(slog.Default(), producer, "comptoir.events")

	e := NewEvent("12", "order.confirmed", []byte(`{"order_id":12}`))
	e.Traceparent = "00-aaa-bbb-01"
	require.NoError(t, d.Dispatch(context.Background(), e))

	require.Len(t, producer.msgs, 1)
	msg := producer.msgs[0]
	assert.Equal(t, "comptoir.events", msg.Topic)
	assert.Equal(t, []byte("12"), msg.Key)
	assert.Equal(t, []byte(`{"order_id":12}`), msg.Value)

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "order.confirmed", headers["event_type"])
	assert.Equal(t, "00-aaa-bbb-01", headers["traceparent"])
}

func TestDispatchPropagatesProducerError(t *testing.T) {
	boom := errors.New("broker down")
	d := NewDispatcher(slog.Default(), &fakeProducer{fail: boom}, "comptoir.events")

	err := d.Dispatch(context.Background(), NewEvent("1", "order.created", nil))
	assert.ErrorIs(t, err, boom)
}
