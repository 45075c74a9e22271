// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

const (
	defaultClientAddress = "http://localhost:8080"
	defaultTokenFileName = ".go-tax-keeper-token"

	defaultClientRetryCount = 2
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the REST API.
	// Env: CLIENT_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// RetryCount is how many times a request rejected with a retryable
	// conflict is repeated.
	// Env: CLIENT_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	// Adapter contains the server address and request timeout.
	Adapter ClientAdapter
	// TokenFile is where the bearer token obtained by login is stored.
	// Env: CLIENT_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetClientConfig builds the client configuration from defaults and CLIENT_
// prefixed environment variables. Command-line flags are applied on top by
// the CLI itself.
func GetClientConfig() (*ClientConfig, error) {
	cfg := defaultClientConfig()

	envCfg := &ClientConfig{}
	if err := env.ParseWithOptions(envCfg, env.Options{Prefix: "CLIENT_"}); err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}

	if err := mergo.Merge(cfg, envCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	return cfg, cfg.validate()
}

// Validate reports whether the client configuration can be used.
func (cfg *ClientConfig) Validate() error {
	return cfg.validate()
}

func defaultClientConfig() *ClientConfig {
	tokenFile := defaultTokenFileName
	if home, err := os.UserHomeDir(); err == nil {
		tokenFile = filepath.Join(home, defaultTokenFileName)
	}

	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    defaultClientAddress,
			RequestTimeout: defaultRequestTimeout,
			RetryCount:     defaultClientRetryCount,
		},
		TokenFile: tokenFile,
	}
}
