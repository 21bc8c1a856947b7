// Package rabbitpub publishes order events to a RabbitMQ fanout exchange.
package rabbitpub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"marketplace/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// DefaultExchange receives order events when no exchange is configured.
const DefaultExchange = "order_events_fanout"

// Channel is the subset of *amqp.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Connection opens channels. *amqp.Connection is adapted by Dial.
type Connection interface {
	Channel() (Channel, error)
	Close() error
}

// Publisher sends every order event to a durable fanout exchange. The
// exchange is declared on the first successful publish.
type Publisher struct {
	conn     Connection
	exchange string

	mu       sync.Mutex
	declared bool
}

type amqpConnection struct {
	conn *amqp.Connection
}

// Dial connects to the broker at url.
func Dial(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return &amqpConnection{conn: conn}, nil
}

func (c *amqpConnection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *amqpConnection) Close() error {
	if c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

func NewPublisher(conn Connection, exchange string) *Publisher {
	if exchange == "" {
		exchange = DefaultExchange
	}
	return &Publisher{conn: conn, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, event order.Event) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = p.declareExchange(ch); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = ch.PublishWithContext(ctx, p.exchange, "", false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         string(event.Kind),
		MessageId:    event.OrderID + ":" + event.Status.String(),
		Timestamp:    event.At,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.conn.Close()
}

func (p *Publisher) declareExchange(ch Channel) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.declared {
		return nil
	}
	if err := ch.ExchangeDeclare(p.exchange, "fanout", true, false, false, false, nil); err != nil {
		return err
	}
	p.declared = true
	return nil
}
