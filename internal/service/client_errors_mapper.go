// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tax-keeper/internal/adapter"
)

// remoteError carries the server's message while matching both the domain
// error it stands for and the adapter's response error.
type remoteError struct {
	kind  error
	cause *adapter.ResponseError
}

func (e *remoteError) Error() string {
	return e.cause.Message
}

func (e *remoteError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

// statusCandidates lists, per status code, the domain errors the server
// sends with it. The last entry is the fallback.
var statusCandidates = map[int][]error{
	http.StatusBadRequest:          {ErrInvalidAmount, ErrInvalidIncome, ErrInvalidFiscalYear, ErrInvalidInput},
	http.StatusUnauthorized:        {ErrInvalidCredentials, ErrWrongPassword, ErrTokenIsExpired, ErrTokenIsExpiredOrInvalid},
	http.StatusForbidden:           {ErrOwnershipMismatch, ErrForbidden},
	http.StatusNotFound:            {ErrUserNotFound, ErrTaxProfileNotFound, ErrPaymentNotFound, ErrNotFound},
	http.StatusConflict:            {ErrDuplicateProfile, ErrDuplicateEmail, ErrConflict},
	http.StatusUnprocessableEntity: {ErrAlreadySettled},
	http.StatusTooManyRequests:     {ErrTooManyAttempts},
}

// mapAdapterError translates a transport error into a domain error.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var respErr *adapter.ResponseError
	if !errors.As(err, &respErr) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	candidates, ok := statusCandidates[respErr.StatusCode]
	if !ok {
		return &remoteError{kind: ErrServerUnavailable, cause: respErr}
	}

	for _, candidate := range candidates {
		if strings.HasPrefix(respErr.Message, candidate.Error()) {
			return &remoteError{kind: candidate, cause: respErr}
		}
	}
	return &remoteError{kind: candidates[len(candidates)-1], cause: respErr}
}
