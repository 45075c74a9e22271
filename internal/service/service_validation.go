// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-tax-keeper/internal/validators"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// Wrappers decorate a service with additional behavior such as validation.
type (
	AuthServiceWrapper interface {
		Wrap(AuthService) AuthService
	}
	UserServiceWrapper interface {
		Wrap(UserService) UserService
	}
	TaxServiceWrapper interface {
		Wrap(TaxService) TaxService
	}
	PaymentServiceWrapper interface {
		Wrap(PaymentService) PaymentService
	}
)

// invalid wraps a validator error so that both ErrInvalidInput and the
// per-field details are reachable with errors.Is / errors.As.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

// ── auth ──────────────────────────────────────────────────────────────────────

type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// RegisterUser validates the trimmed name and the normalized email, the same
// values the inner service stores.
func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}
	return v.AuthService.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}
	return v.AuthService.Login(ctx, req)
}

// ── users ─────────────────────────────────────────────────────────────────────

type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

func (v *UserValidationService) UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = normalizeEmail(req.Email)
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid(err)
	}
	return v.UserService.UpdateUser(ctx, userID, req)
}

func (v *UserValidationService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return invalid(err)
	}
	return v.UserService.ChangePassword(ctx, userID, req)
}

// ── tax profiles ──────────────────────────────────────────────────────────────

type TaxValidationService struct {
	TaxService
	validator validators.Validator
}

func NewTaxValidationService(validator validators.Validator) TaxServiceWrapper {
	return &TaxValidationService{validator: validator}
}

func (v *TaxValidationService) Wrap(inner TaxService) TaxService {
	v.TaxService = inner
	return v
}

func (v *TaxValidationService) PreviewTax(ctx context.Context, req models.TaxPreviewRequest) (models.TaxComputation, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TaxComputation{}, invalid(err)
	}
	return v.TaxService.PreviewTax(ctx, req)
}

func (v *TaxValidationService) CreateTaxProfile(ctx context.Context, req models.CreateTaxProfileRequest) (models.TaxProfile, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.TaxProfile{}, invalid(err)
	}
	return v.TaxService.CreateTaxProfile(ctx, req)
}

// ── payments ──────────────────────────────────────────────────────────────────

type PaymentValidationService struct {
	PaymentService
	validator validators.Validator
}

func NewPaymentValidationService(validator validators.Validator) PaymentServiceWrapper {
	return &PaymentValidationService{validator: validator}
}

func (v *PaymentValidationService) Wrap(inner PaymentService) PaymentService {
	v.PaymentService = inner
	return v
}

// ApplyPayment checks the amount before the struct tags so that a
// non-positive amount is always reported as ErrInvalidAmount.
func (v *PaymentValidationService) ApplyPayment(ctx context.Context, req models.PaymentRequest) (models.PaymentResult, error) {
	if !req.Amount.Round(2).IsPositive() {
		return models.PaymentResult{}, ErrInvalidAmount
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.PaymentResult{}, invalid(err)
	}
	return v.PaymentService.ApplyPayment(ctx, req)
}
