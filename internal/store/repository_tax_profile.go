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
	"github.com/shopspring/decimal"
)

// taxProfileRepository is the PostgreSQL-backed [TaxProfileRepository].
// q is either the pool or an open transaction.
type taxProfileRepository struct {
	q          DBTX
	classifier ErrorClassificator
	logger     *logger.Logger
}

// NewTaxProfileRepository constructs a [TaxProfileRepository] running its
// statements directly on the pool.
func NewTaxProfileRepository(db *DB, logger *logger.Logger) TaxProfileRepository {
	logger.Debug().Msg("creating tax profile repository")
	return &taxProfileRepository{
		q:          db.DB,
		classifier: db.classifier(),
		logger:     logger,
	}
}

// Create inserts the profile and returns the stored row.
// A second profile for the same user and fiscal year yields
// [ErrDuplicateProfile].
func (r *taxProfileRepository) Create(ctx context.Context, profile models.TaxProfile) (models.TaxProfile, error) {
	log := logger.FromContext(ctx)

	row := r.q.QueryRowContext(ctx, createTaxProfile,
		profile.UserID,
		profile.FiscalYear,
		profile.Income,
		profile.TaxDue,
		profile.TaxPaid,
		string(profile.Status),
	)

	created, err := scanTaxProfile(row)
	if err != nil {
		log.Err(err).Str("func", "*taxProfileRepository.Create").Msg("error inserting tax profile")
		return models.TaxProfile{}, storeError(r.classifier, err, ErrDuplicateProfile)
	}

	return created, nil
}

// Get returns the profile or [ErrTaxProfileNotFound].
func (r *taxProfileRepository) Get(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	return r.findOne(ctx, "*taxProfileRepository.Get", getTaxProfile, profileID)
}

// GetForUpdate reads the profile with SELECT ... FOR UPDATE.
func (r *taxProfileRepository) GetForUpdate(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	return r.findOne(ctx, "*taxProfileRepository.GetForUpdate", getTaxProfileForUpdate, profileID)
}

// FindByFiscalYear returns the profile of userID for fiscalYear.
func (r *taxProfileRepository) FindByFiscalYear(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error) {
	return r.findOne(ctx, "*taxProfileRepository.FindByFiscalYear", findTaxProfileByFiscalYear, userID, fiscalYear)
}

func (r *taxProfileRepository) findOne(ctx context.Context, funcName, query string, args ...any) (models.TaxProfile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanTaxProfile(r.q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TaxProfile{}, ErrTaxProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error reading tax profile")
		return models.TaxProfile{}, storeError(r.classifier, err, nil)
	}

	return profile, nil
}

// ListByUser returns every profile of userID, newest fiscal year first.
func (r *taxProfileRepository) ListByUser(ctx context.Context, userID int64) ([]models.TaxProfile, error) {
	log := logger.FromContext(ctx)

	query, args, err := listTaxProfilesQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*taxProfileRepository.ListByUser").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*taxProfileRepository.ListByUser").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, storeError(r.classifier, err, nil))
	}
	defer rows.Close()

	profiles := make([]models.TaxProfile, 0)
	for rows.Next() {
		profile, err := scanTaxProfile(rows)
		if err != nil {
			log.Err(err).Str("func", "*taxProfileRepository.ListByUser").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		profiles = append(profiles, profile)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return profiles, nil
}

// UpdatePaidAndStatus stores the new paid amount and status and returns the
// updated row.
func (r *taxProfileRepository) UpdatePaidAndStatus(ctx context.Context, profileID int64, taxPaid decimal.Decimal, status models.TaxStatus) (models.TaxProfile, error) {
	log := logger.FromContext(ctx)

	profile, err := scanTaxProfile(r.q.QueryRowContext(ctx, updateTaxProfilePaid, profileID, taxPaid, string(status)))
	if errors.Is(err, sql.ErrNoRows) {
		return models.TaxProfile{}, ErrTaxProfileNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*taxProfileRepository.UpdatePaidAndStatus").Msg("error updating tax profile")
		return models.TaxProfile{}, storeError(r.classifier, err, nil)
	}

	return profile, nil
}

func scanTaxProfile(row rowScanner) (models.TaxProfile, error) {
	var p models.TaxProfile
	err := row.Scan(&p.ID, &p.UserID, &p.FiscalYear, &p.Income, &p.TaxDue, &p.TaxPaid, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}
