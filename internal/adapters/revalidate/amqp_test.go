package revalidate

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type publishCall struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakePublisher struct {
	calls []publishCall
	err   error
}

func (f *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.calls = append(f.calls, publishCall{exchange: exchange, key: key, msg: msg})
	return f.err
}

func TestAMQPSink_InvalidatePath(t *testing.T) {
	pub := &fakePublisher{}
	sink := NewAMQPSink(pub, "pages")
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return fixed }

	require.NoError(t, sink.InvalidatePath(context.Background(), "/events/42"))
	require.Len(t, pub.calls, 1)

	call := pub.calls[0]
	assert.Equal(t, "pages", call.exchange)
	assert.Equal(t, RoutingKey, call.key)
	assert.Equal(t, "application/json", call.msg.ContentType)
	assert.Equal(t, amqp.Persistent, call.msg.DeliveryMode)
	assert.NotEmpty(t, call.msg.MessageId)

	var body PageInvalidated
	require.NoError(t, json.Unmarshal(call.msg.Body, &body))
	assert.Equal(t, PageInvalidated{Path: "/events/42", InvalidatedAt: fixed}, body)
}

func TestAMQPSink_PublishFailure(t *testing.T) {
	pub := &fakePublisher{err: amqp.ErrClosed}
	err := NewAMQPSink(pub, "pages").InvalidatePath(context.Background(), "/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, amqp.ErrClosed))
}
