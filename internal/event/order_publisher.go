package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// OrderPublisher publishes order events to RabbitMQ
type OrderPublisher struct {
	conn              *RabbitMQConnection
	messagesPublished int64
	messagesFailed    int64
	lastPublishTime   time.Time
}

// NewOrderPublisher creates a new order event publisher
func NewOrderPublisher(conn *RabbitMQConnection) *OrderPublisher {
	return &OrderPublisher{
		conn:            conn,
		lastPublishTime: time.Now(),
	}
}

// PublishOrderSubmitted publishes an order-submitted event to the
// order_submitted_events queue.
func (p *OrderPublisher) PublishOrderSubmitted(ctx context.Context, event OrderSubmittedEvent) error {
	_, err := p.conn.Channel.QueueDeclare(
		OrderEventQueue, // queue name
		true,            // durable
		false,           // delete when unused
		false,           // exclusive
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	err = p.conn.Channel.PublishWithContext(
		ctx,
		"",              // exchange
		OrderEventQueue, // routing key (queue name)
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		p.messagesFailed++
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	p.messagesPublished++
	p.lastPublishTime = time.Now()

	slog.Info("Order event published",
		"queue", OrderEventQueue,
		"order_id", event.OrderID,
		"total_zmw", event.TotalZMW,
	)

	return nil
}
