// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used by the command-line client to
// talk to the go-tax-keeper server.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]).
// Non-2xx responses are returned as [*ResponseError] values that unwrap to
// the sentinels in errors.go, so callers can use [errors.Is] (e.g.
// [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
// Implementations manage the bearer token and map transport failures to the
// sentinel values of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, req models.RegisterRequest) (models.LoginResponse, error)

	// Login authenticates by email and password and stores the issued token.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	ListTaxpayers(ctx context.Context) ([]models.User, error)

	// PreviewTax computes a liability without storing anything. It does not
	// need a token.
	PreviewTax(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error)
	CreateTaxProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error)
	GetTaxProfile(ctx context.Context, profileID int64) (models.TaxProfile, error)
	ListTaxProfiles(ctx context.Context, userID int64) ([]models.TaxProfile, error)
	CurrentTaxProfile(ctx context.Context, userID int64, fiscalYear string) (models.TaxProfile, error)

	// ApplyPayment submits a payment. Requests rejected with a retryable
	// conflict are repeated by the implementation.
	ApplyPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error)
	GetPayment(ctx context.Context, paymentID int64) (models.Payment, error)
	ListPayments(ctx context.Context, userID int64) ([]models.Payment, error)
	ListTaxProfilePayments(ctx context.Context, profileID int64) ([]models.Payment, error)
	PaymentSummary(ctx context.Context, userID int64) (models.PaymentSummary, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
