// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")
)

// ValidationError lists the fields that failed validation. Details maps the
// JSON name of a field to a human readable message.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field, msg := range e.Details {
		fields = append(fields, field+" "+msg)
	}
	sort.Strings(fields)

	return ErrValidation.Error() + ": " + strings.Join(fields, "; ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Details extracts the per-field messages from err, or nil when err carries
// none.
func Details(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Details
	}
	return nil
}
