// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
)

// UserRepository persists accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
	ListUsersByRole(ctx context.Context, role models.Role) ([]models.User, error)
}

// TaxProfileRepository persists tax profiles.
//
// GetForUpdate locks the profile until the surrounding transaction ends and
// is only meaningful on a repository obtained from a [UnitOfWork].
type TaxProfileRepository interface {
	Create(ctx context.Context, profile models.TaxProfile) (models.TaxProfile, error)
	Get(ctx context.Context, profileID int64) (models.TaxProfile, error)
	GetForUpdate(ctx context.Context, profileID int64) (models.TaxProfile, error)
	FindByFiscalYear(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error)
	ListByUser(ctx context.Context, userID int64) ([]models.TaxProfile, error)
	UpdatePaidAndStatus(ctx context.Context, profileID int64, taxPaid decimal.Decimal, status models.TaxStatus) (models.TaxProfile, error)
}

// PaymentRepository persists the append-only payment log.
type PaymentRepository interface {
	Append(ctx context.Context, payment models.Payment) (models.Payment, error)
	Get(ctx context.Context, paymentID int64) (models.Payment, error)
	List(ctx context.Context, filter models.PaymentFilter) ([]models.Payment, error)
	Summary(ctx context.Context, userID int64) (models.PaymentSummary, error)
}

// UnitOfWork exposes repositories bound to one transaction.
type UnitOfWork interface {
	TaxProfiles() TaxProfileRepository
	Payments() PaymentRepository
}

// Transactor runs fn atomically: every write made through uow is committed
// together when fn returns nil and discarded otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, uow UnitOfWork) error) error
}
