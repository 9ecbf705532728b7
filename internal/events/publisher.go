// Package events publishes completed purchases for downstream fulfilment.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/digital-storefront/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

type Publisher interface {
	PublishPurchase(ctx context.Context, event *models.PurchaseEvent) error
	Close() error
}

type nopPublisher struct{}

// Nop drops every event; used when no broker is configured.
func Nop() Publisher {
	return nopPublisher{}
}

func (nopPublisher) PublishPurchase(context.Context, *models.PurchaseEvent) error { return nil }
func (nopPublisher) Close() error                                                  { return nil }

// Channel is the part of *amqp.Channel the publisher needs.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type AMQPPublisher struct {
	conn    *amqp.Connection
	channel Channel
	queue   string
	now     func() time.Time
}

// Dial connects to the broker and declares a durable queue.
func Dial(url, queue string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}

	slog.Info("Connected to RabbitMQ", slog.String("queue", q.Name))

	p := NewAMQPPublisher(ch, q.Name)
	p.conn = conn

	return p, nil
}

func NewAMQPPublisher(ch Channel, queue string) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, queue: queue, now: time.Now}
}

func (p *AMQPPublisher) PublishPurchase(ctx context.Context, event *models.PurchaseEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.PaymentRef,
			Timestamp:    p.now(),
			Type:         "purchase.completed",
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish purchase %s: %w", event.PaymentRef, err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	err := p.channel.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}

	return err
}
