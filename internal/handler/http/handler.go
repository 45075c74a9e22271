// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
)

type rateLimiter interface {
	Allow(ctx context.Context, key string) ratelimit.Decision
}

type Handler struct {
	services *service.Services

	// limiter throttles the credential endpoints.
	limiter rateLimiter

	requestTimeout time.Duration
	traceIDs       *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiter *ratelimit.Limiter, cfg config.Server, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
	if limiter != nil {
		h.limiter = limiter
	}

	logger.Info().Bool("rate_limit", h.limiter != nil).Msg("http handler created")
	return h
}
