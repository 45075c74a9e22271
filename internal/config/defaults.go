// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultTokenIssuer       = "go-tax-keeper"
	defaultTokenDuration     = 24 * time.Hour
	defaultLockTimeout       = 5 * time.Second
	defaultMaxOpenConns      = 10
	defaultMaxIdleConns      = 4
	defaultFiscalYear        = "2023-2024"
	defaultRateLimitRequests = 10
	defaultRateLimitWindow   = time.Minute
	defaultPaymentsQueue     = "tax.payments"
	defaultVersion           = "0.1.0"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			PasswordCost:  bcrypt.DefaultCost,
			Version:       defaultVersion,
		},
		Storage: Storage{
			DB: DB{
				LockTimeout:  defaultLockTimeout,
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Tax: Tax{
			DefaultFiscalYear: defaultFiscalYear,
		},
		Cache: Cache{
			RateLimit: RateLimit{
				Requests: defaultRateLimitRequests,
				Window:   defaultRateLimitWindow,
			},
		},
		Broker: Broker{
			RabbitMQ: RabbitMQ{Queue: defaultPaymentsQueue},
		},
	}
}
