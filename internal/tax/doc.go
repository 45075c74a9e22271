// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tax computes income-tax liability from annual income using a
// progressive slab schedule selected by fiscal year.
//
// The calculator is pure: it performs no I/O and holds no mutable state, so
// a single [Calculator] may be shared by every request.
package tax
