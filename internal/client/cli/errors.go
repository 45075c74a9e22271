// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/MKhiriev/go-tax-keeper/internal/adapter"
)

var (
	errUnknownFormat   = errors.New("unknown output format")
	errInvalidID       = errors.New("id must be a positive integer")
	errInvalidAmount   = errors.New("invalid amount")
	errEmptyPassword   = errors.New("password must not be empty")
	errNothingToUpdate = errors.New("nothing to update, pass --name or --email")
)

// renderError prints err and the per-field details the server attached to it.
func renderError(w io.Writer, err error) {
	fmt.Fprintf(w, "error: %v\n", err)

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) || len(respErr.Details) == 0 {
		return
	}
	for _, field := range slices.Sorted(maps.Keys(respErr.Details)) {
		fmt.Fprintf(w, "  %s: %s\n", field, respErr.Details[field])
	}
}
