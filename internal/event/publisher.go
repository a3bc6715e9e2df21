package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"aris-service/internal/models"
)

const ExchangeName = "aris.events"

// Publisher sends domain events to the message broker.
type Publisher interface {
	PublishRequestEvent(ctx context.Context, eventType models.EventType, event *models.RequestEvent) error
	Close() error
}

type EventPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	enabled bool
}

// NewEventPublisher connects to RabbitMQ and declares the events exchange.
// An empty URI disables publishing instead of failing, so the service can
// run without a broker in development.
func NewEventPublisher(rabbitURI string) (*EventPublisher, error) {
	if rabbitURI == "" {
		log.Println("Warning: RabbitMQ URI is empty, event publishing disabled")
		return &EventPublisher{enabled: false}, nil
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

	err = channel.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	log.Printf("Event publisher connected, exchange: %s", ExchangeName)
	return &EventPublisher{
		conn:    conn,
		channel: channel,
		enabled: true,
	}, nil
}

func (p *EventPublisher) PublishRequestEvent(ctx context.Context, eventType models.EventType, event *models.RequestEvent) error {
	if !p.enabled {
		return nil
	}

	event.EventType = eventType
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		ExchangeName,
		string(eventType), // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
			Headers: amqp.Table{
				"event_type": string(eventType),
				"request_id": event.RequestID,
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	log.Printf("Published event %s for request %s", eventType, event.RequestID)
	return nil
}

func (p *EventPublisher) Close() error {
	if !p.enabled {
		return nil
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// MockPublisher records events for tests.
type MockPublisher struct {
	Events []models.RequestEvent
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) PublishRequestEvent(_ context.Context, eventType models.EventType, event *models.RequestEvent) error {
	e := *event
	e.EventType = eventType
	m.Events = append(m.Events, e)
	return nil
}

func (m *MockPublisher) Close() error {
	return nil
}
