// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the state of a recorded payment.
type PaymentStatus string

// PaymentCompleted is assigned to every payment appended by the reconciler.
const PaymentCompleted PaymentStatus = "completed"

// Payment is an immutable record of money applied to a tax profile.
// Amount is the applied amount, never the requested one.
type Payment struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	TaxProfileID  int64           `json:"tax_profile_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID *string         `json:"transaction_id,omitempty"`
	PaymentDate   time.Time       `json:"payment_date"`
	Status        PaymentStatus   `json:"status"`

	// FiscalYear is filled only by listings joined with tax_profiles.
	FiscalYear string `json:"fiscal_year,omitempty"`
}

// TableName returns the name of the database table
// associated with the Payment model.
func (p Payment) TableName() string {
	return "payments"
}

// PaymentRequest is the body of POST /api/payments.
// UserID may be omitted; the authenticated user is assumed then.
type PaymentRequest struct {
	UserID        int64           `json:"user_id" validate:"gte=0"`
	TaxProfileID  int64           `json:"tax_profile_id" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"required,max=50"`
	TransactionID *string         `json:"transaction_id,omitempty" validate:"omitempty,max=100"`
}

// PaymentResult is returned by the reconciler: the appended payment and the
// profile snapshot after the update.
type PaymentResult struct {
	Payment    Payment    `json:"payment"`
	TaxProfile TaxProfile `json:"tax_profile"`
}

// PaymentFilter narrows payment listings. Zero fields are ignored.
type PaymentFilter struct {
	UserID       int64
	TaxProfileID int64
	FiscalYear   string
}

// PaymentSummary aggregates all payments of a user.
type PaymentSummary struct {
	TotalPaid       decimal.Decimal `json:"total_paid"`
	PaymentCount    int64           `json:"payment_count"`
	LastPaymentDate *time.Time      `json:"last_payment_date"`
}
