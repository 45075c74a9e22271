// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
)

// MemoryDSN selects the in-process [MemoryStore] instead of PostgreSQL.
const MemoryDSN = "memory"

// Storages bundles the repositories and the transactor handed to the
// service layer.
type Storages struct {
	UserRepository       UserRepository
	TaxProfileRepository TaxProfileRepository
	PaymentRepository    PaymentRepository
	Transactor           Transactor

	closer io.Closer
}

// NewStorages connects to the configured backend. For PostgreSQL the
// embedded migrations are applied before the repositories are built.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == MemoryDSN {
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return NewMemoryStorages(NewMemoryStore(cfg.DB.LockTimeout)), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		TaxProfileRepository: NewTaxProfileRepository(db, log),
		PaymentRepository:    NewPaymentRepository(db, log),
		Transactor:           NewPostgresTransactor(db, cfg.DB.LockTimeout, log),
		closer:               db,
	}, nil
}

// NewMemoryStorages wires every repository to m.
func NewMemoryStorages(m *MemoryStore) *Storages {
	return &Storages{
		UserRepository:       m,
		TaxProfileRepository: m.TaxProfiles(),
		PaymentRepository:    m.Payments(),
		Transactor:           m,
		closer:               m,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
