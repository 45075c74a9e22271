// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tax

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

// Calculator maps (income, fiscal year) to a tax liability.
type Calculator struct {
	regimes map[string]Regime
}

// NewCalculator returns a calculator over the given regimes, or over
// [DefaultRegimes] when none are passed.
func NewCalculator(regimes ...Regime) *Calculator {
	c := &Calculator{regimes: make(map[string]Regime)}
	if len(regimes) == 0 {
		c.regimes = DefaultRegimes()
		return c
	}
	for _, r := range regimes {
		c.regimes[r.FiscalYear] = r
	}
	return c
}

// FiscalYears lists the supported fiscal years in ascending order.
func (c *Calculator) FiscalYears() []string {
	years := make([]string, 0, len(c.regimes))
	for fy := range c.regimes {
		years = append(years, fy)
	}
	sort.Strings(years)
	return years
}

// Regime returns the schedule for fiscalYear.
func (c *Calculator) Regime(fiscalYear string) (Regime, error) {
	r, ok := c.regimes[fiscalYear]
	if !ok {
		return Regime{}, fmt.Errorf("%w: %q", ErrUnsupportedFiscalYear, fiscalYear)
	}
	return r, nil
}

// Calculate returns the tax due on annualIncome rounded half-up to 2 places.
func (c *Calculator) Calculate(annualIncome decimal.Decimal, fiscalYear string) (decimal.Decimal, error) {
	computation, err := c.Compute(annualIncome, fiscalYear)
	if err != nil {
		return decimal.Zero, err
	}
	return computation.TaxDue, nil
}

// Compute returns the itemised computation behind Calculate.
//
// Only the part of taxable income above the exemption limit is taxed: each
// slab contributes min(taxable, max) - max(min, exemption) when positive.
// Taxable income at or below the exemption limit yields exactly zero.
func (c *Calculator) Compute(annualIncome decimal.Decimal, fiscalYear string) (models.TaxComputation, error) {
	if annualIncome.IsNegative() {
		return models.TaxComputation{}, ErrNegativeIncome
	}

	regime, err := c.Regime(fiscalYear)
	if err != nil {
		return models.TaxComputation{}, err
	}

	taxable := decimal.Max(decimal.Zero, annualIncome.Sub(regime.StandardDeduction))

	result := models.TaxComputation{
		FiscalYear:        regime.FiscalYear,
		Income:            annualIncome,
		StandardDeduction: regime.StandardDeduction,
		ExemptionLimit:    regime.ExemptionLimit,
		TaxableIncome:     taxable,
		Slabs:             make([]models.SlabTax, 0, len(regime.Slabs)),
		TaxDue:            decimal.Zero,
	}

	if taxable.LessThanOrEqual(regime.ExemptionLimit) {
		return result, nil
	}

	total := decimal.Zero
	for _, slab := range regime.Slabs {
		lower := decimal.Max(slab.Min, regime.ExemptionLimit)
		if !taxable.GreaterThan(lower) {
			continue
		}

		upper := taxable
		if !slab.Open {
			upper = decimal.Min(taxable, slab.Max)
		}

		amount := upper.Sub(lower)
		if !amount.IsPositive() {
			continue
		}

		slabTax := amount.Mul(slab.Rate)
		total = total.Add(slabTax)

		line := models.SlabTax{
			From:          slab.Min,
			Rate:          slab.Rate,
			TaxableAmount: amount,
			Tax:           slabTax.Round(2),
		}
		if !slab.Open {
			upTo := slab.Max
			line.UpTo = &upTo
		}
		result.Slabs = append(result.Slabs, line)
	}

	result.TaxDue = total.Round(2)
	return result, nil
}
