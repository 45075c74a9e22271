// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import sq "github.com/Masterminds/squirrel"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const (
	userColumns = `id, name, email, password_hash, role, created_at`

	createUser = `INSERT INTO users (name, email, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE email = $1;`

	updateUser = `UPDATE users
    SET name = $2, email = $3
    WHERE id = $1
    RETURNING ` + userColumns + `;`

	updateUserPassword = `UPDATE users
    SET password_hash = $2
    WHERE id = $1;`
)

const (
	taxProfileColumns = `id, user_id, fiscal_year, income, tax_due, tax_paid, status, created_at, updated_at`

	createTaxProfile = `INSERT INTO tax_profiles (user_id, fiscal_year, income, tax_due, tax_paid, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING ` + taxProfileColumns + `;`

	getTaxProfile = `SELECT ` + taxProfileColumns + `
    FROM tax_profiles
    WHERE id = $1;`

	getTaxProfileForUpdate = `SELECT ` + taxProfileColumns + `
    FROM tax_profiles
    WHERE id = $1
    FOR UPDATE;`

	findTaxProfileByFiscalYear = `SELECT ` + taxProfileColumns + `
    FROM tax_profiles
    WHERE user_id = $1 AND fiscal_year = $2;`

	updateTaxProfilePaid = `UPDATE tax_profiles
    SET tax_paid = $2, status = $3, updated_at = NOW()
    WHERE id = $1
    RETURNING ` + taxProfileColumns + `;`
)

const (
	appendPayment = `INSERT INTO payments (user_id, tax_profile_id, amount, payment_method, transaction_id, status)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING id, user_id, tax_profile_id, amount, payment_method, transaction_id, payment_date, status;`

	getPayment = `SELECT p.id, p.user_id, p.tax_profile_id, p.amount, p.payment_method, p.transaction_id, p.payment_date, p.status, tp.fiscal_year
    FROM payments p
    JOIN tax_profiles tp ON tp.id = p.tax_profile_id
    WHERE p.id = $1;`

	paymentSummary = `SELECT COALESCE(SUM(amount), 0), COUNT(*), MAX(payment_date)
    FROM payments
    WHERE user_id = $1;`
)

// setLockTimeout bounds row lock waits for the current transaction. SET does
// not accept bind parameters, so the value is formatted in.
const setLockTimeout = `SET LOCAL lock_timeout = '%dms'`

func listUsersByRoleQuery(role string) (string, []any, error) {
	return psql.Select(userColumns).
		From("users").
		Where(sq.Eq{"role": role}).
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func listTaxProfilesQuery(userID int64) (string, []any, error) {
	return psql.Select(taxProfileColumns).
		From("tax_profiles").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("fiscal_year DESC", "id DESC").
		ToSql()
}

func listPaymentsQuery(userID, taxProfileID int64, fiscalYear string) (string, []any, error) {
	query := psql.Select(
		"p.id", "p.user_id", "p.tax_profile_id", "p.amount", "p.payment_method",
		"p.transaction_id", "p.payment_date", "p.status", "tp.fiscal_year",
	).
		From("payments p").
		Join("tax_profiles tp ON tp.id = p.tax_profile_id")

	if userID != 0 {
		query = query.Where(sq.Eq{"p.user_id": userID})
	}
	if taxProfileID != 0 {
		query = query.Where(sq.Eq{"p.tax_profile_id": taxProfileID})
	}
	if fiscalYear != "" {
		query = query.Where(sq.Eq{"tp.fiscal_year": fiscalYear})
	}

	return query.OrderBy("p.payment_date DESC", "p.id DESC").ToSql()
}
