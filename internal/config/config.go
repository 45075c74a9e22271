// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the tax
// keeper server. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and the version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Tax holds tax computation defaults.
	Tax Tax `envPrefix:"TAX_"`

	// Cache holds the Redis connection used by the login rate limiter.
	Cache Cache `envPrefix:"CACHE_"`

	// Broker holds the message broker receiving domain events.
	Broker Broker `envPrefix:"BROKER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control security,
// token lifecycle, and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordCost is the bcrypt cost used for new password hashes.
	// Env: APP_PASSWORD_COST
	PasswordCost int `env:"PASSWORD_COST"`

	// Version is exposed via GET /api and GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string. The value "memory" selects the
	// in-process store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// LockTimeout bounds how long a payment waits for the profile row lock.
	// Env: STORAGE_DB_LOCK_TIMEOUT
	LockTimeout time.Duration `env:"LOCK_TIMEOUT"`

	// MaxOpenConns caps the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns caps idle connections kept in the pool.
	// Env: STORAGE_DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the REST API in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Tax holds tax computation defaults.
type Tax struct {
	// DefaultFiscalYear is used when a request omits the fiscal year.
	// Env: TAX_DEFAULT_FISCAL_YEAR
	DefaultFiscalYear string `env:"DEFAULT_FISCAL_YEAR"`
}

// Cache groups cache backends.
type Cache struct {
	// Redis holds the connection used by the rate limiter. An empty address
	// disables rate limiting.
	Redis Redis `envPrefix:"REDIS_"`

	// RateLimit holds the limits applied to authentication routes.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
}

// Redis holds connection settings for Redis.
type Redis struct {
	// Env: CACHE_REDIS_ADDRESS
	Address string `env:"ADDRESS"`
	// Env: CACHE_REDIS_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: CACHE_REDIS_DB
	DB int `env:"DB"`
}

// RateLimit configures the fixed-window limiter.
type RateLimit struct {
	// Requests is the number of requests allowed per Window and client.
	// Env: CACHE_RATE_LIMIT_REQUESTS
	Requests int `env:"REQUESTS"`

	// Window is the length of one counting window.
	// Env: CACHE_RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`
}

// Broker groups message broker settings.
type Broker struct {
	RabbitMQ RabbitMQ `envPrefix:"RABBITMQ_"`
}

// RabbitMQ holds the AMQP connection receiving payment events. An empty URL
// disables publishing.
type RabbitMQ struct {
	// Env: BROKER_RABBITMQ_URL
	URL string `env:"URL"`
	// Env: BROKER_RABBITMQ_QUEUE
	Queue string `env:"QUEUE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
