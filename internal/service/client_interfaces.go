// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

// ClientAuthService registers and logs in on the server and keeps the
// resulting session on disk.
type ClientAuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	// Logout forgets the saved session. It does not contact the server.
	Logout(ctx context.Context) error
	// Session returns the saved session or ErrNotLoggedIn.
	Session(ctx context.Context) (models.Session, error)
	ServerVersion(ctx context.Context) (string, error)
}

// ClientUserService works with the account of the logged-in user.
type ClientUserService interface {
	Profile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
	ListTaxpayers(ctx context.Context) ([]models.User, error)
}

// ClientTaxService previews liabilities and manages tax profiles. A zero
// userID means the logged-in user.
type ClientTaxService interface {
	Preview(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error)
	CreateProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error)
	GetProfile(ctx context.Context, profileID int64) (models.TaxProfile, error)
	ListProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error)
	CurrentProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error)
}

// ClientPaymentService submits payments and reads the payment log. A zero
// userID means the logged-in user.
type ClientPaymentService interface {
	Pay(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error)
	GetPayment(ctx context.Context, paymentID int64) (models.Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
	ListProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error)
	Summary(ctx context.Context, userID int64) (models.PaymentSummary, error)
}
