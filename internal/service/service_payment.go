// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/events"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

// publishTimeout bounds event publication after a committed payment.
const publishTimeout = 5 * time.Second

// paymentService is the payment reconciler. It applies payments to tax
// profiles so that 0 <= tax_paid <= tax_due holds and the payment log always
// sums up to tax_paid.
type paymentService struct {
	taxProfileRepository store.TaxProfileRepository
	paymentRepository    store.PaymentRepository
	transactor           store.Transactor
	publisher            events.Publisher

	logger *logger.Logger
}

func NewPaymentService(
	taxProfileRepository store.TaxProfileRepository,
	paymentRepository store.PaymentRepository,
	transactor store.Transactor,
	publisher events.Publisher,
	logger *logger.Logger,
) PaymentService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	return &paymentService{
		taxProfileRepository: taxProfileRepository,
		paymentRepository:    paymentRepository,
		transactor:           transactor,
		publisher:            publisher,
		logger:               logger,
	}
}

// ApplyPayment applies req.Amount to the tax profile, capped at the
// remaining due.
//
// Preconditions are checked in order: a positive amount (ErrInvalidAmount),
// an existing profile (ErrTaxProfileNotFound), a profile owned by the payer
// (ErrOwnershipMismatch), and something left to pay (ErrAlreadySettled).
//
// The profile row stays locked from the read until the payment and the new
// paid amount are committed together. Losing the lock race yields
// ErrConflict.
func (s *paymentService) ApplyPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	log := logger.FromContext(ctx)

	amount := req.Amount.Round(2)
	if !amount.IsPositive() {
		return models.PaymentResult{}, ErrInvalidAmount
	}

	// Access to the named user is checked before the profile is read.
	userID, err := resolveUserID(ctx, req.UserID)
	if err != nil {
		return models.PaymentResult{}, err
	}
	if err = checkAccess(ctx, userID); err != nil {
		return models.PaymentResult{}, err
	}

	var result models.PaymentResult
	err = s.transactor.WithinTx(ctx, func(ctx context.Context, uow store.UnitOfWork) error {
		profile, err := uow.TaxProfiles().GetForUpdate(ctx, req.TaxProfileID)
		if err != nil {
			return err
		}

		if profile.UserID != userID {
			return ErrOwnershipMismatch
		}

		remaining := profile.RemainingDue()
		if profile.Status == models.StatusPaid || !remaining.IsPositive() {
			return ErrAlreadySettled
		}

		applied := decimal.Min(amount, remaining)

		payment, err := uow.Payments().Append(ctx, models.Payment{
			UserID:        userID,
			TaxProfileID:  profile.ID,
			Amount:        applied,
			PaymentMethod: req.PaymentMethod,
			TransactionID: req.TransactionID,
			Status:        models.PaymentCompleted,
		})
		if err != nil {
			return err
		}

		taxPaid := profile.TaxPaid.Add(applied)
		updated, err := uow.TaxProfiles().UpdatePaidAndStatus(ctx, profile.ID, taxPaid, models.StatusFor(profile.TaxDue, taxPaid))
		if err != nil {
			return err
		}

		payment.FiscalYear = updated.FiscalYear
		result = models.PaymentResult{Payment: payment, TaxProfile: updated}
		return nil
	})
	if err != nil {
		log.Err(err).
			Int64("tax_profile_id", req.TaxProfileID).
			Int64("user_id", userID).
			Msg("payment was not applied")
		return models.PaymentResult{}, mapStoreError(err)
	}

	log.Info().
		Int64("payment_id", result.Payment.ID).
		Int64("tax_profile_id", result.TaxProfile.ID).
		Str("requested", amount.StringFixed(2)).
		Str("applied", result.Payment.Amount.StringFixed(2)).
		Str("status", string(result.TaxProfile.Status)).
		Msg("payment applied")

	s.publish(ctx, result)

	return result, nil
}

// publish never fails the payment: it is already committed.
func (s *paymentService) publish(ctx context.Context, result models.PaymentResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := s.publisher.PublishPaymentApplied(ctx, models.NewPaymentAppliedEvent(result)); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Int64("payment_id", result.Payment.ID).
			Msg("payment applied event was not published")
	}
}

func (s *paymentService) GetPayment(ctx context.Context, paymentID int64) (models.Payment, error) {
	payment, err := s.paymentRepository.Get(ctx, paymentID)
	if err != nil {
		return models.Payment{}, mapStoreError(err)
	}
	if err = checkAccess(ctx, payment.UserID); err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// ListUserPayments returns the payments of a user, newest first.
func (s *paymentService) ListUserPayments(ctx context.Context, userID int64) ([]models.Payment, error) {
	if err := checkAccess(ctx, userID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepository.List(ctx, models.PaymentFilter{UserID: userID})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return payments, nil
}

// ListTaxProfilePayments returns the payments applied to a tax profile,
// newest first.
func (s *paymentService) ListTaxProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error) {
	profile, err := s.taxProfileRepository.Get(ctx, profileID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	if err = checkAccess(ctx, profile.UserID); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepository.List(ctx, models.PaymentFilter{TaxProfileID: profileID})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return payments, nil
}

func (s *paymentService) PaymentSummary(ctx context.Context, userID int64) (models.PaymentSummary, error) {
	if err := checkAccess(ctx, userID); err != nil {
		return models.PaymentSummary{}, err
	}

	summary, err := s.paymentRepository.Summary(ctx, userID)
	if err != nil {
		return models.PaymentSummary{}, mapStoreError(err)
	}
	return summary, nil
}
