package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-TableReservation/internal/domain"
)

const (
	// ExchangeKind тип exchange: получатели подписываются на reservation.*
	ExchangeKind = "topic"

	contentType = "application/json"
)

// Publisher публикует уведомления о бронированиях в RabbitMQ
type Publisher struct {
	conn     *amqp.Connection
	channel  Channel
	exchange string
	timeout  time.Duration
	log      Logger
}

// Dial подключается к брокеру и объявляет durable exchange
func Dial(url, exchange string, timeout time.Duration, log Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	if err := ch.ExchangeDeclare(exchange, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %q: %v", ErrConnect, exchange, err)
	}

	p := NewPublisher(ch, exchange, timeout, log)
	p.conn = conn
	return p, nil
}

// NewPublisher создает издателя поверх уже открытого канала
func NewPublisher(ch Channel, exchange string, timeout time.Duration, log Logger) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		timeout:  timeout,
		log:      log,
	}
}

// Send публикует persistent JSON-сообщение с ключом reservation.<kind>
func (p *Publisher) Send(ctx context.Context, res *domain.Reservation, kind domain.NotificationKind) error {
	now := time.Now()

	body, err := json.Marshal(NewMessage(res, kind, now))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	messageID := uuid.NewString()
	routingKey := RoutingKey(kind)

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  contentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    messageID,
		Timestamp:    now.UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("%w: %s for reservation id=%d: %v", ErrPublish, routingKey, res.ID, err)
	}

	p.log.Info("Published %s for reservation id=%d, message_id=%s", routingKey, res.ID, messageID)
	return nil
}

// Close закрывает канал и соединение
func (p *Publisher) Close() {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.log.Warn("Failed to close RabbitMQ channel: %v", err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.log.Warn("Failed to close RabbitMQ connection: %v", err)
		}
	}
}
