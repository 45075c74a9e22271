// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/tax"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

type taxService struct {
	userRepository       store.UserRepository
	taxProfileRepository store.TaxProfileRepository
	calculator           *tax.Calculator
	defaultFiscalYear    string

	logger *logger.Logger
}

func NewTaxService(
	userRepository store.UserRepository,
	taxProfileRepository store.TaxProfileRepository,
	calculator *tax.Calculator,
	cfg config.Tax,
	logger *logger.Logger,
) TaxService {
	fiscalYear := cfg.DefaultFiscalYear
	if fiscalYear == "" {
		fiscalYear = models.DefaultFiscalYear
	}

	return &taxService{
		userRepository:       userRepository,
		taxProfileRepository: taxProfileRepository,
		calculator:           calculator,
		defaultFiscalYear:    fiscalYear,
		logger:               logger,
	}
}

// PreviewTax computes the liability without persisting anything.
func (s *taxService) PreviewTax(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error) {
	computation, err := s.calculator.Compute(req.Income, s.fiscalYear(req.FiscalYear))
	if err != nil {
		return models.TaxComputation{}, mapTaxError(err)
	}
	return computation, nil
}

// CreateTaxProfile computes the tax due once and persists the profile. A
// zero liability is created already settled.
func (s *taxService) CreateTaxProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error) {
	log := logger.FromContext(ctx)

	userID, err := resolveUserID(ctx, req.UserID)
	if err != nil {
		return models.TaxProfile{}, err
	}
	if err = checkAccess(ctx, userID); err != nil {
		return models.TaxProfile{}, err
	}

	fiscalYear := s.fiscalYear(req.FiscalYear)
	income := req.Income.Round(2)

	taxDue, err := s.calculator.Calculate(income, fiscalYear)
	if err != nil {
		return models.TaxProfile{}, mapTaxError(err)
	}

	if _, err = s.userRepository.FindUserByID(ctx, userID); err != nil {
		return models.TaxProfile{}, mapStoreError(err)
	}

	profile, err := s.taxProfileRepository.Create(ctx, models.TaxProfile{
		UserID:     userID,
		FiscalYear: fiscalYear,
		Income:     income,
		TaxDue:     taxDue,
		TaxPaid:    decimal.Zero,
		Status:     models.StatusFor(taxDue, decimal.Zero),
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Str("fiscal_year", fiscalYear).Msg("tax profile creation failed")
		return models.TaxProfile{}, mapStoreError(err)
	}

	log.Info().
		Int64("tax_profile_id", profile.ID).
		Str("fiscal_year", fiscalYear).
		Str("tax_due", taxDue.StringFixed(2)).
		Msg("tax profile created")

	return profile, nil
}

func (s *taxService) GetTaxProfile(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	profile, err := s.taxProfileRepository.Get(ctx, profileID)
	if err != nil {
		return models.TaxProfile{}, mapStoreError(err)
	}
	if err = checkAccess(ctx, profile.UserID); err != nil {
		return models.TaxProfile{}, err
	}
	return profile, nil
}

// ListTaxProfiles returns the profiles of a user, latest fiscal year first.
func (s *taxService) ListTaxProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error) {
	if err := checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	profiles, err := s.taxProfileRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return profiles, nil
}

// CurrentTaxProfile returns the profile of userID for fiscalYear, or for the
// default fiscal year when fiscalYear is empty.
func (s *taxService) CurrentTaxProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error) {
	if err := checkAccess(ctx, userID); err != nil {
		return models.TaxProfile{}, err
	}

	profile, err := s.taxProfileRepository.FindByFiscalYear(ctx, userID, s.fiscalYear(fiscalYear))
	if err != nil {
		return models.TaxProfile{}, mapStoreError(err)
	}
	return profile, nil
}

func (s *taxService) fiscalYear(requested string) string {
	if requested == "" {
		return s.defaultFiscalYear
	}
	return requested
}
