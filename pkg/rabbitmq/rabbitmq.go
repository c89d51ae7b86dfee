package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"pasar/internal/models"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// DefaultQueue is the queue order events are published to when Config.Queue is empty.
const DefaultQueue = "order_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex // amqp channels are not safe for concurrent publishing
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declare(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	slog.Info("rabbitmq client connected", "queue", queue)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func declare(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", queue, err)
	}
	return nil
}

// Close closes the RabbitMQ channel and connection.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("rabbitmq close: %v", errs)
	}
	return nil
}

// PublishOrderEvent publishes event as a persistent JSON message.
func (c *Client) PublishOrderEvent(event models.OrderEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	c.mu.Lock()
	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key
		false,   // mandatory
		false,   // immediate
		msg,
	)
	c.mu.Unlock()
	if err != nil {
		return fmt.Errorf("failed to publish order event: %w", err)
	}

	slog.Debug("order event published", "type", event.Type, "order_id", event.OrderID, "message_id", msg.MessageId)
	return nil
}

// newPublishing encodes event. The event id doubles as the message id so
// consumers can deduplicate redeliveries.
func newPublishing(event models.OrderEvent) (amqp.Publishing, error) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal order event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
		Body:         body,
	}, nil
}

// DecodeOrderEvent decodes the body of a delivered order event.
func DecodeOrderEvent(body []byte) (models.OrderEvent, error) {
	var event models.OrderEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("failed to decode order event: %w", err)
	}
	if event.Type == "" || event.OrderID == 0 {
		return event, fmt.Errorf("order event is missing type or order id")
	}
	return event, nil
}

// ConsumeOrderEvents delivers order events to handler on a background
// goroutine. Successful deliveries are acked. Undecodable messages are
// dropped and handler failures are requeued once.
func (c *Client) ConsumeOrderEvents(handler func(models.OrderEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	msgs, err := c.channel.Consume(
		c.queue, // queue
		"",      // consumer tag
		false,   // auto-ack
		false,   // exclusive
		false,   // no-local
		false,   // no-wait
		nil,     // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	slog.Info("waiting for order events", "queue", c.queue)

	go func() {
		for msg := range msgs {
			settle(msg, handler)
		}
		slog.Info("order event consumer stopped", "queue", c.queue)
	}()

	return nil
}

func settle(msg amqp.Delivery, handler func(models.OrderEvent) error) {
	event, err := DecodeOrderEvent(msg.Body)
	if err != nil {
		slog.Warn("dropping malformed order event", "delivery_tag", msg.DeliveryTag, "error", err)
		if nackErr := msg.Nack(false, false); nackErr != nil {
			slog.Error("error nacking message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
		}
		return
	}

	if err := handler(event); err != nil {
		slog.Error("error processing order event", "message_id", msg.MessageId, "error", err)
		if nackErr := msg.Nack(false, !msg.Redelivered); nackErr != nil {
			slog.Error("error nacking message", "delivery_tag", msg.DeliveryTag, "error", nackErr)
		}
		return
	}
	if ackErr := msg.Ack(false); ackErr != nil {
		slog.Error("error acking message", "delivery_tag", msg.DeliveryTag, "error", ackErr)
	}
}
