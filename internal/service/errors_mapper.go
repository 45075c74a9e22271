// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/tax"
)

// domainErrors pass through mapStoreError unchanged.
var domainErrors = []error{
	ErrInvalidInput,
	ErrNotFound,
	ErrDuplicateProfile,
	ErrDuplicateEmail,
	ErrOwnershipMismatch,
	ErrAlreadySettled,
	ErrConflict,
	ErrStorageFailure,
	ErrInvalidCredentials,
	ErrWrongPassword,
	ErrForbidden,
}

// mapStoreError translates a repository error into a domain error. Errors
// without a domain meaning become [ErrStorageFailure].
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			return err
		}
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrTaxProfileNotFound):
		return ErrTaxProfileNotFound
	case errors.Is(err, store.ErrPaymentNotFound):
		return ErrPaymentNotFound
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrDuplicateProfile):
		return ErrDuplicateProfile
	case errors.Is(err, store.ErrConcurrentUpdate):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
}

// mapTaxError translates calculator errors into domain errors.
func mapTaxError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tax.ErrNegativeIncome):
		return ErrInvalidIncome
	case errors.Is(err, tax.ErrUnsupportedFiscalYear):
		return ErrInvalidFiscalYear
	default:
		return err
	}
}
