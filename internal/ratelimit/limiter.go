// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements a fixed-window request limiter backed by
// Redis. It protects the unauthenticated login and registration routes.
//
// The limiter fails open: if Redis is unreachable the request is allowed
// and the error is logged.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/redis/go-redis/v9"
)

// incrExpireScript increments the window counter and starts its expiry on
// the first hit, atomically.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// Limiter counts requests per key in fixed windows.
type Limiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger *logger.Logger
}

// NewLimiter builds a limiter from cfg. It returns nil when Redis is not
// configured; a nil *Limiter allows every request.
func NewLimiter(cfg config.Cache, log *logger.Logger) *Limiter {
	if cfg.Redis.Address == "" || cfg.RateLimit.Requests <= 0 || cfg.RateLimit.Window <= 0 {
		log.Info().Str("func", "ratelimit.NewLimiter").Msg("rate limiting is disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return New(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window, log)
}

// New wraps an existing client.
func New(rdb *redis.Client, limit int, window time.Duration, log *logger.Logger) *Limiter {
	return &Limiter{
		rdb:    rdb,
		limit:  limit,
		window: window,
		prefix: "rl:",
		logger: log,
	}
}

// Allow records one hit for key and reports whether it fits the window.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	if l == nil {
		return Decision{Allowed: true}
	}

	redisKey := l.prefix + key
	count, err := incrExpireScript.Run(ctx, l.rdb, []string{redisKey}, l.window.Milliseconds()).Int()
	if err != nil {
		l.logger.Err(err).Str("func", "Limiter.Allow").Str("key", redisKey).Msg("rate limiter unavailable, allowing request")
		return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit}
	}

	ttl, err := l.rdb.PTTL(ctx, redisKey).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}

	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		ResetIn:   ttl,
	}
}

// Close releases the Redis connection pool.
func (l *Limiter) Close() error {
	if l == nil {
		return nil
	}
	if err := l.rdb.Close(); err != nil {
		return fmt.Errorf("error closing redis client: %w", err)
	}
	return nil
}
