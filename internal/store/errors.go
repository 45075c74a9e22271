// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is the parent of every "record does not exist" error.
	ErrNotFound = errors.New("record not found")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = fmt.Errorf("user: %w", ErrNotFound)

	// ErrTaxProfileNotFound is returned when no tax profile matches the lookup.
	ErrTaxProfileNotFound = fmt.Errorf("tax profile: %w", ErrNotFound)

	// ErrPaymentNotFound is returned when no payment matches the lookup.
	ErrPaymentNotFound = fmt.Errorf("payment: %w", ErrNotFound)

	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two accounts the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrDuplicateProfile is returned when the user already has a tax
	// profile for the fiscal year.
	ErrDuplicateProfile = errors.New("tax profile for fiscal year already exists")

	// ErrConcurrentUpdate is returned when a transaction lost a lock race:
	// lock timeout, serialization failure or deadlock. The operation may be
	// retried.
	ErrConcurrentUpdate = errors.New("concurrent update, retry the operation")

	// ErrNoRowsAffected is returned when an UPDATE matched no row.
	ErrNoRowsAffected = errors.New("no rows affected")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning during multi-row iteration
	// fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ErrSessionNotFound is returned by SessionStore.Load when the client has no
// saved login.
var ErrSessionNotFound = errors.New("no saved session, log in first")
