// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("event publisher is closed")

//go:generate mockgen -source=publisher.go -destination=../mock/publisher_mock.go -package=mock

// Publisher delivers domain events to subscribers.
type Publisher interface {
	PublishPaymentApplied(ctx context.Context, event models.PaymentAppliedEvent) error
	Close() error
}

// NewPublisher connects to the configured broker. An empty RabbitMQ URL
// yields a [NopPublisher].
func NewPublisher(cfg config.Broker, log *logger.Logger) (Publisher, error) {
	if cfg.RabbitMQ.URL == "" {
		log.Info().Str("func", "events.NewPublisher").Msg("broker is not configured, events are discarded")
		return NopPublisher{}, nil
	}

	return NewRabbitPublisher(cfg.RabbitMQ, log)
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) PublishPaymentApplied(context.Context, models.PaymentAppliedEvent) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
