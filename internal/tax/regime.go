// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tax

import "github.com/shopspring/decimal"

// Slab taxes the part of taxable income in [Min, Max) at Rate.
// A zero Max with Open set marks the top slab.
type Slab struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Open bool
	Rate decimal.Decimal
}

// Regime is the schedule in force for one fiscal year.
type Regime struct {
	FiscalYear        string
	StandardDeduction decimal.Decimal
	ExemptionLimit    decimal.Decimal
	Slabs             []Slab
}

func lakh(n int64) decimal.Decimal {
	return decimal.NewFromInt(n * 100_000)
}

func percent(n int64) decimal.Decimal {
	return decimal.New(n, -2)
}

// regime2023 is the new-regime schedule with the 12 lakh rebate.
var regime2023 = Regime{
	FiscalYear:        "2023-2024",
	StandardDeduction: decimal.NewFromInt(75_000),
	ExemptionLimit:    lakh(12),
	Slabs: []Slab{
		{Min: lakh(4), Max: lakh(8), Rate: percent(5)},
		{Min: lakh(8), Max: lakh(12), Rate: percent(10)},
		{Min: lakh(12), Max: lakh(16), Rate: percent(15)},
		{Min: lakh(16), Max: lakh(20), Rate: percent(20)},
		{Min: lakh(20), Max: lakh(24), Rate: percent(25)},
		{Min: lakh(24), Open: true, Rate: percent(30)},
	},
}

// DefaultRegimes returns the schedules known to this build keyed by fiscal year.
func DefaultRegimes() map[string]Regime {
	return map[string]Regime{
		regime2023.FiscalYear: regime2023,
	}
}
