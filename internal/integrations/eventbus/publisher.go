package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует события бронирований в RabbitMQ.
// Соединение устанавливается лениво и переоткрывается после обрыва.
type Publisher struct {
	url string
	log Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewPublisher создает издателя событий
func NewPublisher(url string, log Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishReservationCreated публикует событие reservation.created
func (p *Publisher) PublishReservationCreated(ctx context.Context, event ReservationCreated) error {
	return p.publish(ctx, QueueReservationCreated, event)
}

// PublishReminder публикует событие reservation.reminder
func (p *Publisher) PublishReminder(ctx context.Context, event ReservationReminder) error {
	return p.publish(ctx, QueueReservationReminder, event)
}

// Close закрывает соединение с брокером
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

func (p *Publisher) publish(ctx context.Context, queue string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrPublish, queue, err)
	}

	ch, err := p.channel()
	if err != nil {
		p.log.Error("eventbus: %s: %v", queue, err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Очередь durable, объявление идемпотентно
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		p.log.Error("eventbus: queue declare %s failed: %v", queue, err)
		return fmt.Errorf("%w: declare %s: %v", ErrPublish, queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		p.log.Error("eventbus: publish %s failed: %v", queue, err)
		return fmt.Errorf("%w: %s: %v", ErrPublish, queue, err)
	}

	p.log.Debug("eventbus: published %s", queue)
	return nil
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		conn, err := amqp.Dial(p.url)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConnect, err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		_ = p.conn.Close()
		p.conn = nil
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	return ch, nil
}

// Noop издатель для окружений без брокера
type Noop struct{}

// PublishReservationCreated ничего не делает
func (Noop) PublishReservationCreated(context.Context, ReservationCreated) error { return nil }

// PublishReminder ничего не делает
func (Noop) PublishReminder(context.Context, ReservationReminder) error { return nil }
