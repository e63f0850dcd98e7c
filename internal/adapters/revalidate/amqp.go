package revalidate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// RoutingKey is the routing key of PageInvalidated messages.
const RoutingKey = "page.invalidated"

// PageInvalidated is the message body published by AMQPSink.
type PageInvalidated struct {
	Path          string    `json:"path"`
	InvalidatedAt time.Time `json:"invalidated_at"`
}

// amqpPublisher is the subset of *amqp.Channel used by AMQPSink.
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSink publishes PageInvalidated messages to a topic exchange.
type AMQPSink struct {
	channel  amqpPublisher
	exchange string
	now      func() time.Time
}

func NewAMQPSink(channel amqpPublisher, exchange string) *AMQPSink {
	return &AMQPSink{channel: channel, exchange: exchange, now: time.Now}
}

// DialAMQP connects to url, declares exchange as a durable topic exchange and
// returns a sink publishing to it. The returned close func releases the
// channel and the connection.
func DialAMQP(url, exchange string) (*AMQPSink, func() error, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open amqp channel: %w", err)
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("declare exchange %q: %w", exchange, err)
	}

	closeFn := func() error {
		_ = ch.Close()
		return conn.Close()
	}
	return NewAMQPSink(ch, exchange), closeFn, nil
}

func (s *AMQPSink) InvalidatePath(ctx context.Context, path string) error {
	now := s.now().UTC()
	body, err := json.Marshal(PageInvalidated{Path: path, InvalidatedAt: now})
	if err != nil {
		return err
	}
	err = s.channel.PublishWithContext(
		ctx,
		s.exchange,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    uuid.NewString(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    now,
		},
	)
	if err != nil {
		return fmt.Errorf("publish invalidation: %w", err)
	}
	return nil
}
