package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/booklend/library-api/internal/model"
)

const (
	exchangeName = "library.events"
	exchangeType = "topic"

	EventTypeBookCreated   = "library.book.created"
	EventTypeBookUpdated   = "library.book.updated"
	EventTypeBookDeleted   = "library.book.deleted"
	EventTypeBorrowCreated = "library.borrow.created"

	publishTimeout = 5 * time.Second
)

// Publisher emits domain events for book and borrow lifecycle changes.
type Publisher interface {
	PublishBookCreated(ctx context.Context, book *model.Book) error
	PublishBookUpdated(ctx context.Context, book *model.Book) error
	PublishBookDeleted(ctx context.Context, id uuid.UUID) error
	PublishBorrowCreated(ctx context.Context, borrow *model.Borrow) error
	Close() error
}

// Event is the wire format for all published events.
type Event struct {
	EventID   string         `json:"event_id"`
	EventType string         `json:"event_type"`
	Timestamp string         `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// AMQPPublisher publishes events to a RabbitMQ topic exchange with
// publisher confirms. Publishes are serialized so each confirmation can be
// matched to its event.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	confirms chan amqp.Confirmation
	log      *zap.Logger
}

func NewAMQPPublisher(url string, log *zap.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		exchangeName,
		exchangeType,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	if err := channel.Confirm(false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}

	confirms := channel.NotifyPublish(make(chan amqp.Confirmation, 1))

	log.Info("connected to RabbitMQ", zap.String("exchange", exchangeName))

	return &AMQPPublisher{conn: conn, channel: channel, confirms: confirms, log: log}, nil
}

func (p *AMQPPublisher) PublishBookCreated(ctx context.Context, book *model.Book) error {
	return p.publish(ctx, EventTypeBookCreated, map[string]any{
		"book_id": book.ID.String(),
		"title":   book.Title,
		"author":  book.Author,
		"copies":  book.Copies,
	})
}

func (p *AMQPPublisher) PublishBookUpdated(ctx context.Context, book *model.Book) error {
	return p.publish(ctx, EventTypeBookUpdated, map[string]any{
		"book_id":   book.ID.String(),
		"copies":    book.Copies,
		"available": book.Available,
	})
}

func (p *AMQPPublisher) PublishBookDeleted(ctx context.Context, id uuid.UUID) error {
	return p.publish(ctx, EventTypeBookDeleted, map[string]any{
		"book_id": id.String(),
	})
}

func (p *AMQPPublisher) PublishBorrowCreated(ctx context.Context, borrow *model.Borrow) error {
	return p.publish(ctx, EventTypeBorrowCreated, map[string]any{
		"borrow_id":     borrow.ID.String(),
		"book_id":       borrow.BookID.String(),
		"borrower_name": borrow.BorrowerName,
		"quantity":      borrow.Quantity,
		"due_date":      borrow.DueDate.UTC().Format(time.RFC3339),
	})
}

func (p *AMQPPublisher) publish(ctx context.Context, eventType string, payload map[string]any) error {
	event := Event{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Payload:   payload,
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		eventType, // routing key
		false,     // mandatory
		false,     // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			MessageId:    event.EventID,
			Body:         body,
		},
	)
	if err != nil {
		p.log.Warn("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}

	select {
	case confirm := <-p.confirms:
		if !confirm.Ack {
			return fmt.Errorf("event %s not acknowledged", event.EventID)
		}
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(publishTimeout):
		return fmt.Errorf("confirmation timeout for event %s", event.EventID)
	}

	p.log.Debug("event published",
		zap.String("event_id", event.EventID),
		zap.String("event_type", eventType),
	)
	return nil
}

func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.Error("failed to close channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher is used when no broker is configured and in tests.
type NopPublisher struct{}

func (NopPublisher) PublishBookCreated(context.Context, *model.Book) error     { return nil }
func (NopPublisher) PublishBookUpdated(context.Context, *model.Book) error     { return nil }
func (NopPublisher) PublishBookDeleted(context.Context, uuid.UUID) error       { return nil }
func (NopPublisher) PublishBorrowCreated(context.Context, *model.Borrow) error { return nil }
func (NopPublisher) Close() error                                              { return nil }
