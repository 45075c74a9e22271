// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// paymentRepository is the PostgreSQL-backed [PaymentRepository].
// Payments are never updated or deleted.
type paymentRepository struct {
	q          DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewPaymentRepository constructs a [PaymentRepository] running its
// statements directly on the pool.
func NewPaymentRepository(db *DB, logger *logger.Logger) PaymentRepository {
	logger.Debug().Msg("creating payment repository")
	return &paymentRepository{
		q:          db.DB,
		classifier: db.classifier(),
		logger:     logger,
	}
}

// Append inserts the payment and returns it with ID and PaymentDate set.
func (r *paymentRepository) Append(ctx context.Context, payment models.Payment) (models.Payment, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, appendPayment,
		payment.UserID,
		payment.TaxProfileID,
		payment.Amount,
		payment.PaymentMethod,
		payment.TransactionID,
		string(payment.Status),
	)

	var saved models.Payment
	err := row.Scan(
		&saved.ID, &saved.UserID, &saved.TaxProfileID, &saved.Amount, &saved.PaymentMethod,
		&saved.TransactionID, &saved.PaymentDate, &saved.Status,
	)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.Append").Msg("error inserting payment")
		return models.Payment{}, storeError(r.classifier, err, nil)
	}

	return saved, nil
}

// Get returns the payment joined with its profile's fiscal year.
func (r *paymentRepository) Get(ctx context.Context, paymentID int64) (models.Payment, error) {
	log := logger.FromContext(ctx)

	payment, err := scanPayment(r.q.QueryRowContext(ctx, getPayment, paymentID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, ErrPaymentNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.Get").Msg("error reading payment")
		return models.Payment{}, storeError(r.classifier, err, nil)
	}

	return payment, nil
}

// List returns the payments matching filter, newest first.
func (r *paymentRepository) List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error) {
	log := logger.FromContext(ctx)

	query, args, err := listPaymentsQuery(filter.UserID, filter.TaxProfileID, filter.FiscalYear)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.List").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.List").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, storeError(r.classifier, err, nil))
	}
	defer rows.Close()

	payments := make([]models.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			log.Err(err).Str("func", "*paymentRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return payments, nil
}

// Summary aggregates the payments of userID.
func (r *paymentRepository) Summary(ctx context.Context, userID int64) (models.PaymentSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.PaymentSummary
	err := r.q.QueryRowContext(ctx, paymentSummary, userID).
		Scan(&summary.TotalPaid, &summary.PaymentCount, &summary.LastPaymentDate)
	if err != nil {
		log.Err(err).Str("func", "*paymentRepository.Summary").Msg("error aggregating payments")
		return models.PaymentSummary{}, fmt.Errorf("%w: %w", ErrScanningRow, storeError(r.classifier, err, nil))
	}

	return summary, nil
}

func scanPayment(row rowScanner) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID, &p.UserID, &p.TaxProfileID, &p.Amount, &p.PaymentMethod,
		&p.TransactionID, &p.PaymentDate, &p.Status, &p.FiscalYear,
	)
	return p, err
}
