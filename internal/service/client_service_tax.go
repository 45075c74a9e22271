// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

type clientTaxService struct {
	session *clientSession
}

// Preview works without a session.
func (s *clientTaxService) Preview(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error) {
	computation, err := s.session.adapter.PreviewTax(ctx, req)
	return computation, mapAdapterError(err)
}

func (s *clientTaxService) CreateProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error) {
	if _, err := s.session.restore(ctx); err != nil {
		return models.TaxProfile{}, err
	}

	profile, err := s.session.adapter.CreateTaxProfile(ctx, req)
	return profile, mapAdapterError(err)
}

func (s *clientTaxService) GetProfile(ctx context.Context, profileID int64) (models.TaxProfile, error) {
	if _, err := s.session.restore(ctx); err != nil {
		return models.TaxProfile{}, err
	}

	profile, err := s.session.adapter.GetTaxProfile(ctx, profileID)
	return profile, mapAdapterError(err)
}

func (s *clientTaxService) ListProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error) {
	userID, err := s.session.userID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profiles, err := s.session.adapter.ListTaxProfiles(ctx, userID)
	return profiles, mapAdapterError(err)
}

func (s *clientTaxService) CurrentProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error) {
	userID, err := s.session.userID(ctx, userID)
	if err != nil {
		return models.TaxProfile{}, err
	}

	profile, err := s.session.adapter.CurrentTaxProfile(ctx, userID, fiscalYear)
	return profile, mapAdapterError(err)
}
