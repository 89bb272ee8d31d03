// Package rabbitmq implements the notification bus on a RabbitMQ topic
// exchange. Every lifecycle event is published to the shared exchange with
// the topic as routing key; subscriber dashboards bind their own queues.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"eats/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Notifier publishes order lifecycle events as persistent JSON messages.
// Delivery is at-least-once; the engine keeps no queue or retry state, so a
// broker outage surfaces as a publish error the callers log and move past.
type Notifier struct {
	ch       *amqp.Channel
	exchange string
}

// NewNotifier opens a publisher channel on the connection and declares the
// topic exchange idempotently.
func NewNotifier(conn *amqp.Connection, exchange string) (*Notifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, err
	}

	return &Notifier{ch: ch, exchange: exchange}, nil
}

// Publish sends the event to the exchange with the topic as routing key.
func (n *Notifier) Publish(ctx context.Context, topic ports.Topic, event *ports.OrderSnapshot) error {
	if n.ch == nil || n.ch.IsClosed() {
		return errors.New("rabbitmq: publish channel is not open")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return n.ch.PublishWithContext(ctx,
		n.exchange, string(topic), false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		})
}

// Close releases the publisher channel.
func (n *Notifier) Close() error {
	if n.ch == nil {
		return nil
	}
	return n.ch.Close()
}
