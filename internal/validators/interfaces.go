// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators validates request models before they reach the
// service layer.
//
// Rules are declared with `validate` struct tags on the models and checked
// by go-playground/validator. Two tags are specific to this module:
//   - pwd       : password length accepted by bcrypt (8..72 characters)
//   - fiscalyear: "YYYY-YYYY" where the second year follows the first
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally restricts
	// validation to the named struct fields (Go field names, not JSON names).
	Validate(context.Context, any, ...string) error
}
