// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

// Domain errors returned by the services. Transport layers map them to
// status codes with [errors.Is].
var (
	// ErrInvalidInput is the parent of every request validation failure.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a payment amount is not positive.
	ErrInvalidAmount = fmt.Errorf("%w: payment amount must be greater than 0", ErrInvalidInput)

	// ErrInvalidIncome is returned for a negative annual income.
	ErrInvalidIncome = fmt.Errorf("%w: income must not be negative", ErrInvalidInput)

	// ErrInvalidFiscalYear is returned when no tax schedule exists for the
	// requested fiscal year.
	ErrInvalidFiscalYear = fmt.Errorf("%w: unsupported fiscal year", ErrInvalidInput)

	// ErrNotFound is the parent of every "record does not exist" error.
	ErrNotFound = errors.New("not found")

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrTaxProfileNotFound = fmt.Errorf("tax profile %w", ErrNotFound)
	ErrPaymentNotFound    = fmt.Errorf("payment %w", ErrNotFound)

	ErrDuplicateProfile = errors.New("tax profile already exists for this fiscal year")
	ErrDuplicateEmail   = errors.New("user with this email already exists")

	// ErrOwnershipMismatch is returned when a payment names a tax profile of
	// another user.
	ErrOwnershipMismatch = errors.New("tax profile does not belong to the user")

	// ErrAlreadySettled is returned when the tax profile has nothing left to pay.
	ErrAlreadySettled = errors.New("tax is already fully paid for this profile")

	// ErrConflict is returned when the operation lost a race for the tax
	// profile. The request may be retried.
	ErrConflict = errors.New("tax profile is being updated concurrently, retry the request")

	// ErrStorageFailure wraps every unexpected storage error.
	ErrStorageFailure = errors.New("storage failure")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWrongPassword      = errors.New("current password is incorrect")

	// ErrForbidden is returned when the authenticated user reads or writes
	// records of another user without the admin role.
	ErrForbidden = errors.New("access to records of another user is forbidden")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Errors of the command-line client services.
var (
	// ErrNotLoggedIn is returned when a command needs a saved session.
	ErrNotLoggedIn = errors.New("not logged in, run `login` first")

	ErrTooManyAttempts = errors.New("too many attempts, try again later")

	// ErrServerUnavailable is returned when the server could not be reached
	// or failed to process the request.
	ErrServerUnavailable = errors.New("server is unavailable")
)
