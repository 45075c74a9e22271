// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
)

// postgresTransactor runs units of work in a PostgreSQL transaction whose
// row lock waits are bounded by lockTimeout.
type postgresTransactor struct {
	db          *DB
	lockTimeout time.Duration
	logger      *logger.Logger
}

// NewPostgresTransactor constructs a [Transactor] over db. A zero
// lockTimeout leaves the server default in place.
func NewPostgresTransactor(db *DB, lockTimeout time.Duration, logger *logger.Logger) Transactor {
	logger.Debug().Msg("creating postgres transactor")
	return &postgresTransactor{
		db:          db,
		lockTimeout: lockTimeout,
		logger:      logger,
	}
}

// WithinTx implements [Transactor]. Lock timeouts, serialization failures
// and deadlocks, whether raised by a statement or by COMMIT, are reported as
// [ErrConcurrentUpdate].
func (t *postgresTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error {
	log := logger.FromContext(ctx)
	classifier := t.db.classifier()

	err := WithTx(ctx, t.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		if t.lockTimeout > 0 {
			stmt := fmt.Sprintf(setLockTimeout, t.lockTimeout.Milliseconds())
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				log.Err(err).Str("func", "*postgresTransactor.WithinTx").Msg("error setting lock timeout")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, storeError(classifier, err, nil))
			}
		}

		return fn(ctx, &postgresUnitOfWork{
			profiles: &taxProfileRepository{q: tx, classifier: classifier, logger: t.logger},
			payments: &paymentRepository{q: tx, classifier: classifier, logger: t.logger},
		})
	})

	if err != nil && !errors.Is(err, ErrConcurrentUpdate) && classifier.Classify(err) == Contention {
		return fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
	}

	return err
}

type postgresUnitOfWork struct {
	profiles TaxProfileRepository
	payments PaymentRepository
}

func (u *postgresUnitOfWork) TaxProfiles() TaxProfileRepository {
	return u.profiles
}

func (u *postgresUnitOfWork) Payments() PaymentRepository {
	return u.payments
}
