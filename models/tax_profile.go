// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxStatus is the settlement state of a tax profile.
type TaxStatus string

const (
	// StatusPending means no payment has been applied yet.
	StatusPending TaxStatus = "pending"
	// StatusPartiallyPaid means some, but not all, of the liability is paid.
	StatusPartiallyPaid TaxStatus = "partially_paid"
	// StatusPaid is terminal: the liability is settled.
	StatusPaid TaxStatus = "paid"
)

// DefaultFiscalYear is used when a request omits the fiscal year.
const DefaultFiscalYear = "2023-2024"

// SettlementTolerance is the largest remaining due still treated as settled.
var SettlementTolerance = decimal.New(1, -2)

// TaxProfile is the liability of one user for one fiscal year.
//
// TaxDue is computed once at creation and never recalculated. TaxPaid only
// grows, and 0 <= TaxPaid <= TaxDue holds at all times.
type TaxProfile struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	FiscalYear string          `json:"fiscal_year"`
	Income     decimal.Decimal `json:"income"`
	TaxDue     decimal.Decimal `json:"tax_due"`
	TaxPaid    decimal.Decimal `json:"tax_paid"`
	Status     TaxStatus       `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the TaxProfile model.
func (p TaxProfile) TableName() string {
	return "tax_profiles"
}

// RemainingDue returns TaxDue - TaxPaid floored at zero.
func (p TaxProfile) RemainingDue() decimal.Decimal {
	remaining := p.TaxDue.Sub(p.TaxPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// StatusFor derives the status from the paid and due amounts.
// A remaining due within SettlementTolerance counts as paid.
func StatusFor(taxDue, taxPaid decimal.Decimal) TaxStatus {
	switch {
	case taxDue.Sub(taxPaid).LessThanOrEqual(SettlementTolerance):
		return StatusPaid
	case taxPaid.IsPositive():
		return StatusPartiallyPaid
	default:
		return StatusPending
	}
}

// CreateTaxProfileRequest is the body of POST /api/tax-profiles.
// UserID may be omitted; the authenticated user is assumed then.
type CreateTaxProfileRequest struct {
	UserID     int64           `json:"user_id" validate:"gte=0"`
	Income     decimal.Decimal `json:"income"`
	FiscalYear string          `json:"fiscal_year" validate:"omitempty,fiscalyear"`
}

// TaxPreviewRequest is the body of POST /api/tax-profiles/calculate.
type TaxPreviewRequest struct {
	Income     decimal.Decimal `json:"income"`
	FiscalYear string          `json:"fiscal_year" validate:"omitempty,fiscalyear"`
}

// SlabTax is the tax accrued inside one slab of the schedule.
// UpTo is nil for the open-ended top slab.
type SlabTax struct {
	From          decimal.Decimal  `json:"from"`
	UpTo          *decimal.Decimal `json:"up_to,omitempty"`
	Rate          decimal.Decimal  `json:"rate"`
	TaxableAmount decimal.Decimal  `json:"taxable_amount"`
	Tax           decimal.Decimal  `json:"tax"`
}

// TaxComputation is the itemised result of a tax preview.
type TaxComputation struct {
	FiscalYear        string          `json:"fiscal_year"`
	Income            decimal.Decimal `json:"income"`
	StandardDeduction decimal.Decimal `json:"standard_deduction"`
	ExemptionLimit    decimal.Decimal `json:"exemption_limit"`
	TaxableIncome     decimal.Decimal `json:"taxable_income"`
	Slabs             []SlabTax       `json:"slabs"`
	TaxDue            decimal.Decimal `json:"tax_due"`
}
