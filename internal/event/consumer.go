package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"aris-service/internal/models"
)

// SnapshotInvalidator drops cached analysis results when the roster changes.
type SnapshotInvalidator interface {
	InvalidateSnapshots(ctx context.Context) error
}

type ConsumerConfig struct {
	Exchange   string
	RoutingKey string
	Queue      string
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Exchange:   "hr.events",
		RoutingKey: "employee.#",
		Queue:      "aris.employee.events",
	}
}

// EventConsumer listens for employee change events from the HR systems and
// invalidates analysis snapshots so the next request re-runs over fresh data.
type EventConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	invalidator SnapshotInvalidator
	config      ConsumerConfig
	shutdown    chan struct{}
	wg          sync.WaitGroup
}

func NewEventConsumer(rabbitURI string, invalidator SnapshotInvalidator, config ConsumerConfig) (*EventConsumer, error) {
	if rabbitURI == "" {
		return nil, fmt.Errorf("RabbitMQ URI is empty")
	}

	conn, err := amqp.Dial(rabbitURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.Qos(10, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	err = channel.ExchangeDeclare(
		config.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", config.Exchange, err)
	}

	queue, err := channel.QueueDeclare(
		config.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(queue.Name, config.RoutingKey, config.Exchange, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &EventConsumer{
		conn:        conn,
		channel:     channel,
		invalidator: invalidator,
		config:      config,
		shutdown:    make(chan struct{}),
	}, nil
}

func (c *EventConsumer) Start() error {
	deliveries, err := c.channel.Consume(
		c.config.Queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		log.Printf("Event consumer started, queue: %s, binding: %s", c.config.Queue, c.config.RoutingKey)
		for {
			select {
			case <-c.shutdown:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					log.Println("Warning: event delivery channel closed")
					return
				}
				c.handleDelivery(delivery)
			}
		}
	}()

	return nil
}

func (c *EventConsumer) handleDelivery(delivery amqp.Delivery) {
	var event models.EmployeeEvent
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		log.Printf("Warning: failed to decode employee event: %v", err)
		delivery.Nack(false, false)
		return
	}

	ctx := context.Background()
	if err := c.invalidator.InvalidateSnapshots(ctx); err != nil {
		log.Printf("Warning: failed to invalidate snapshots for %s: %v", event.EmployeeNumber, err)
		delivery.Nack(false, true)
		return
	}

	log.Printf("Invalidated analysis snapshots after %s event for employee %s", delivery.RoutingKey, event.EmployeeNumber)
	delivery.Ack(false)
}

func (c *EventConsumer) Close() error {
	close(c.shutdown)
	c.wg.Wait()
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
