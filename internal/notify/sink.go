package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cashfy/backend/internal/gamification"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

// Message is a gamification event of a user as published to a Sink.
type Message struct {
	UserID    uuid.UUID              `json:"user"`
	Kind      gamification.EventKind `json:"kind"`
	Badge     gamification.BadgeID   `json:"badge,omitempty"`
	Message   string                 `json:"message,omitempty"`
	XP        int                    `json:"xp,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// NewMessage converts a gamification event.
func NewMessage(userID uuid.UUID, event gamification.Event, at time.Time) Message {
	m := Message{
		UserID:    userID,
		Kind:      event.Kind,
		Message:   event.Message,
		XP:        event.XP,
		Timestamp: at.UTC(),
	}

	if event.Badge != nil {
		m.Badge = event.Badge.ID
	}

	return m
}

// Sink receives gamification events.
type Sink interface {
	Publish(ctx context.Context, message Message) error
}

// publisher is the subset of *amqp091.Channel used by AMQPSink.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPSink publishes events to a durable direct exchange. The routing key
// is the event kind.
type AMQPSink struct {
	conn     *amqp091.Connection
	channel  publisher
	exchange string
}

// DialAMQP connects to the broker at url and declares the exchange.
func DialAMQP(url, exchange string) (*AMQPSink, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"direct", // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &AMQPSink{conn: conn, channel: channel, exchange: exchange}, nil
}

func (s *AMQPSink) Publish(ctx context.Context, message Message) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = s.channel.PublishWithContext(
		ctx,
		s.exchange,           // exchange
		string(message.Kind), // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    message.Timestamp,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	log.Debug().Str("exchange", s.exchange).Str("kind", string(message.Kind)).Str("user", message.UserID.String()).Msg("published event")
	return nil
}

func (s *AMQPSink) Close() error {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}
