package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"subscription_syncer/internal/domain"
)

// RabbitMQ delivers connection error notices to operators via a durable
// queue. It implements the tracker's Notifier interface.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

const (
	EventConnectionError = "connection_error"
	EventErrorExpired    = "error_expired"
)

// NoticeMessage is the payload published for each notification.
type NoticeMessage struct {
	Event     string            `json:"event"`
	Kind      domain.EntityKind `json:"kind"`
	ID        int64             `json:"id"`
	Timestamp time.Time         `json:"timestamp"`
}

// NotifyConnectionError publishes a notice that an entity reached its
// connection error limit.
func (r *RabbitMQ) NotifyConnectionError(ctx context.Context, kind domain.EntityKind, id int64) error {
	return r.publish(ctx, EventConnectionError, kind, id)
}

// NotifyErrorExpired publishes a notice that an entity's connection error
// cleared.
func (r *RabbitMQ) NotifyErrorExpired(ctx context.Context, kind domain.EntityKind, id int64) error {
	return r.publish(ctx, EventErrorExpired, kind, id)
}

func (r *RabbitMQ) publish(ctx context.Context, event string, kind domain.EntityKind, id int64) error {
	msg := NoticeMessage{
		Event:     event,
		Kind:      kind,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published notice",
		"event", event,
		"kind", kind,
		"id", id,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
