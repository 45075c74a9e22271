// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// channel is the subset of *amqp.Channel used for publishing.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher publishes JSON events to a durable queue through the
// default exchange.
type RabbitPublisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     channel
	queue  string
	closed bool
	logger *logger.Logger
}

// NewRabbitPublisher dials cfg.URL and declares cfg.Queue as a durable queue.
func NewRabbitPublisher(cfg config.RabbitMQ, log *logger.Logger) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("error connecting to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("error declaring queue %q: %w", cfg.Queue, err)
	}

	log.Info().Str("func", "NewRabbitPublisher").Str("queue", cfg.Queue).Msg("connected to rabbitmq")

	return &RabbitPublisher{conn: conn, ch: ch, queue: cfg.Queue, logger: log}, nil
}

// PublishPaymentApplied sends event as a persistent JSON message. The event
// type travels in the message Type property.
func (p *RabbitPublisher) PublishPaymentApplied(ctx context.Context, event models.PaymentAppliedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error encoding %s event: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	err = p.ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    uuid.NewString(),
			Type:         event.Type,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("error publishing %s event: %w", event.Type, err)
	}

	p.logger.Debug().
		Str("func", "RabbitPublisher.PublishPaymentApplied").
		Int64("payment_id", event.PaymentID).
		Msg("event published")

	return nil
}

// Close closes the channel and the connection. It is safe to call twice.
func (p *RabbitPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
