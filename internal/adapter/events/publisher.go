package events

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"github.com/simaogato/potshare-backend/internal/domain"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp091.Channel the publisher needs
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPPublisher publishes domain events as JSON to a topic exchange
type AMQPPublisher struct {
	conn     *amqp091.Connection
	channel  channel
	exchange string
	logger   *slog.Logger
}

// NewAMQPPublisher dials the broker, retrying with exponential backoff until ctx is done,
// and declares the durable topic exchange.
func NewAMQPPublisher(ctx context.Context, url, exchange string, logger *slog.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	conn, err := dialWithRetry(ctx, url, logger)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func dialWithRetry(ctx context.Context, url string, logger *slog.Logger) (*amqp091.Connection, error) {
	for attempt := 0; ; attempt++ {
		conn, err := amqp091.Dial(url)
		if err == nil {
			return conn, nil
		}

		wait := backoff(attempt)
		logger.WarnContext(ctx, "AMQP dial failed, retrying", "attempt", attempt+1, "wait", wait, "error", err)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("dial AMQP: %w", err)
		case <-time.After(wait):
		}
	}
}

// backoff doubles from one second and is capped at 30 seconds
func backoff(attempt int) time.Duration {
	if attempt >= 5 {
		return 30 * time.Second
	}
	return time.Duration(1<<attempt) * time.Second
}

// PublishExpenseCreated publishes an expense.created message
func (p *AMQPPublisher) PublishExpenseCreated(ctx context.Context, expense *domain.Expense) error {
	body, err := NewExpenseCreatedMessage(expense).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	return p.publish(ctx, KeyExpenseCreated, body)
}

// PublishSplitPaid publishes a split.paid message
func (p *AMQPPublisher) PublishSplitPaid(ctx context.Context, expense *domain.Expense, split domain.Split) error {
	body, err := NewSplitPaidMessage(expense, split).ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}
	return p.publish(ctx, KeySplitPaid, body)
}

func (p *AMQPPublisher) publish(ctx context.Context, key string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err := p.channel.PublishWithContext(
		ctx,
		p.exchange, // exchange
		key,        // routing key
		false,      // mandatory
		false,      // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	p.logger.DebugContext(ctx, "Published event", "key", key, "exchange", p.exchange)
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishExpenseCreated(context.Context, *domain.Expense) error {
	return nil
}

func (NopPublisher) PublishSplitPaid(context.Context, *domain.Expense, domain.Split) error {
	return nil
}

var (
	_ domain.EventPublisher = (*AMQPPublisher)(nil)
	_ domain.EventPublisher = NopPublisher{}
)
