// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tax

import "errors"

var (
	// ErrNegativeIncome is returned when the annual income is below zero.
	ErrNegativeIncome = errors.New("income must not be negative")

	// ErrUnsupportedFiscalYear is returned when no schedule exists for the
	// requested fiscal year.
	ErrUnsupportedFiscalYear = errors.New("unsupported fiscal year")
)
