// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

type clientPaymentService struct {
	session *clientSession
}

// Pay rejects non-positive amounts before contacting the server.
func (s *clientPaymentService) Pay(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	if !req.Amount.IsPositive() {
		return models.PaymentResult{}, ErrInvalidAmount
	}
	if _, err := s.session.restore(ctx); err != nil {
		return models.PaymentResult{}, err
	}

	result, err := s.session.adapter.ApplyPayment(ctx, req)
	return result, mapAdapterError(err)
}

func (s *clientPaymentService) GetPayment(ctx context.Context, paymentID int64) (models.Payment, error) {
	if _, err := s.session.restore(ctx); err != nil {
		return models.Payment{}, err
	}

	payment, err := s.session.adapter.GetPayment(ctx, paymentID)
	return payment, mapAdapterError(err)
}

func (s *clientPaymentService) ListPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	userID, err := s.session.userID(ctx, userID)
	if err != nil {
		return nil, err
	}

	payments, err := s.session.adapter.ListPayments(ctx, userID)
	return payments, mapAdapterError(err)
}

func (s *clientPaymentService) ListProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error) {
	if _, err := s.session.restore(ctx); err != nil {
		return nil, err
	}

	payments, err := s.session.adapter.ListTaxProfilePayments(ctx, profileID)
	return payments, mapAdapterError(err)
}

func (s *clientPaymentService) Summary(ctx context.Context, userID int64) (models.PaymentSummary, error) {
	userID, err := s.session.userID(ctx, userID)
	if err != nil {
		return models.PaymentSummary{}, err
	}

	summary, err := s.session.adapter.PaymentSummary(ctx, userID)
	return summary, mapAdapterError(err)
}
