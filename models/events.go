// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventPaymentApplied is the type of the event published after a payment
// has been committed.
const EventPaymentApplied = "payment.applied"

// PaymentAppliedEvent describes a committed payment and the resulting state
// of its tax profile.
type PaymentAppliedEvent struct {
	Type         string          `json:"type"`
	PaymentID    int64           `json:"payment_id"`
	TaxProfileID int64           `json:"tax_profile_id"`
	UserID       int64           `json:"user_id"`
	FiscalYear   string          `json:"fiscal_year"`
	Amount       decimal.Decimal `json:"amount"`
	TaxPaid      decimal.Decimal `json:"tax_paid"`
	TaxDue       decimal.Decimal `json:"tax_due"`
	Status       TaxStatus       `json:"status"`
	OccurredAt   time.Time       `json:"occurred_at"`
}

// NewPaymentAppliedEvent builds the event from a reconciler result.
func NewPaymentAppliedEvent(result PaymentResult) PaymentAppliedEvent {
	return PaymentAppliedEvent{
		Type:         EventPaymentApplied,
		PaymentID:    result.Payment.ID,
		TaxProfileID: result.TaxProfile.ID,
		UserID:       result.TaxProfile.UserID,
		FiscalYear:   result.TaxProfile.FiscalYear,
		Amount:       result.Payment.Amount,
		TaxPaid:      result.TaxProfile.TaxPaid,
		TaxDue:       result.TaxProfile.TaxDue,
		Status:       result.TaxProfile.Status,
		OccurredAt:   result.Payment.PaymentDate,
	}
}
