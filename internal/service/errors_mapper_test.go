// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/tax"
	"github.com/stretchr/testify/assert"
)

func TestMapStoreError(t *testing.T) {
	driverErr := errors.New("driver: bad connection")

	tests := []struct {
		name    string
		err     error
		wantIs  []error
		wantNil bool
	}{
		{name: "nil", err: nil, wantNil: true},
		{name: "user not found", err: store.ErrUserNotFound, wantIs: []error{ErrUserNotFound, ErrNotFound}},
		{name: "tax profile not found", err: fmt.Errorf("get: %w", store.ErrTaxProfileNotFound), wantIs: []error{ErrTaxProfileNotFound, ErrNotFound}},
		{name: "payment not found", err: store.ErrPaymentNotFound, wantIs: []error{ErrPaymentNotFound, ErrNotFound}},
		{name: "generic not found", err: store.ErrNotFound, wantIs: []error{ErrNotFound}},
		{name: "email exists", err: store.ErrEmailAlreadyExists, wantIs: []error{ErrDuplicateEmail}},
		{name: "duplicate profile", err: store.ErrDuplicateProfile, wantIs: []error{ErrDuplicateProfile}},
		{name: "lock timeout", err: fmt.Errorf("%w: lock timeout", store.ErrConcurrentUpdate), wantIs: []error{ErrConflict}},
		{name: "domain error passes through", err: ErrOwnershipMismatch, wantIs: []error{ErrOwnershipMismatch}},
		{name: "settled passes through", err: ErrAlreadySettled, wantIs: []error{ErrAlreadySettled}},
		{name: "unexpected", err: fmt.Errorf("%w: %w", store.ErrExecutingStatement, driverErr), wantIs: []error{ErrStorageFailure, driverErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapStoreError(tt.err)
			if tt.wantNil {
				assert.NoError(t, got)
				return
			}
			for _, want := range tt.wantIs {
				assert.ErrorIs(t, got, want)
			}
		})
	}
}

func TestMapStoreError_ConflictIsNotStorageFailure(t *testing.T) {
	err := mapStoreError(store.ErrConcurrentUpdate)
	assert.NotErrorIs(t, err, ErrStorageFailure)
}

func TestMapTaxError(t *testing.T) {
	assert.NoError(t, mapTaxError(nil))
	assert.ErrorIs(t, mapTaxError(tax.ErrNegativeIncome), ErrInvalidIncome)
	assert.ErrorIs(t, mapTaxError(tax.ErrUnsupportedFiscalYear), ErrInvalidFiscalYear)

	other := errors.New("other")
	assert.Equal(t, other, mapTaxError(other))
}

func TestErrorHierarchy(t *testing.T) {
	for _, err := range []error{ErrInvalidAmount, ErrInvalidIncome, ErrInvalidFiscalYear} {
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	for _, err := range []error{ErrUserNotFound, ErrTaxProfileNotFound, ErrPaymentNotFound} {
		assert.ErrorIs(t, err, ErrNotFound)
	}
}
