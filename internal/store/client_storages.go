// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
)

// ClientStorages groups the storage used by the command-line client.
type ClientStorages struct {
	SessionStore SessionStore
}

func NewClientStorages(cfg config.ClientConfig, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("token_file", cfg.TokenFile).Msg("creating client storages...")

	return &ClientStorages{
		SessionStore: NewSessionStore(cfg.TokenFile),
	}
}
