package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-ResourceBookingService/internal/domain"
)

const (
	DefaultExchange = "bookings"
	contentTypeJSON = "application/json"
)

// Publisher отправляет события бронирований в topic exchange RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	timeout  time.Duration
	mu       sync.Mutex
	logger   Logger
}

// NewPublisher подключается к брокеру и объявляет durable topic exchange
func NewPublisher(url, exchange string, timeout time.Duration, logger Logger) (*Publisher, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Publisher{
		conn:     conn,
		ch:       ch,
		exchange: exchange,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// Publish отправляет событие с routing key = тип события
func (p *Publisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	body, err := json.Marshal(FromDomainEvent(event))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt.UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	// канал amqp не рассчитан на параллельную публикацию
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, msg); err != nil {
		return fmt.Errorf("%w: booking=%d type=%s: %v", ErrPublish, event.BookingID, event.Type, err)
	}

	p.logger.Info("Notifier: published %s for booking=%d (event_id=%s)", event.Type, event.BookingID, event.EventID)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NoopPublisher используется, когда RabbitMQ выключен
type NoopPublisher struct {
	logger Logger
}

func NewNoopPublisher(logger Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(ctx context.Context, event domain.BookingEvent) error {
	p.logger.Info("Notifier: rabbitmq disabled, skip %s for booking=%d", event.Type, event.BookingID)
	return nil
}
