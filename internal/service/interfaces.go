// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

// AuthService registers accounts and issues and verifies bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages account profiles.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	ListTaxpayers(ctx context.Context) ([]models.User, error)
}

// TaxService previews tax liabilities and manages tax profiles.
type TaxService interface {
	PreviewTax(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error)
	CreateTaxProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error)
	GetTaxProfile(ctx context.Context, profileID int64) (models.TaxProfile, error)
	ListTaxProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error)
	CurrentTaxProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error)
}

// PaymentService applies payments to tax profiles and reads the payment log.
type PaymentService interface {
	ApplyPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error)
	GetPayment(ctx context.Context, paymentID int64) (models.Payment, error)
	ListUserPayments(ctx context.Context, userID int64) ([]models.Payment, error)
	ListTaxProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error)
	PaymentSummary(ctx context.Context, userID int64) (models.PaymentSummary, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
