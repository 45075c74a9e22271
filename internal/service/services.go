// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server and of the
// command-line client.
//
// Server services receive the authenticated identity through the request
// context (see utils.WithIdentity) and enforce that taxpayers only reach
// their own records. Every returned error is one of the domain errors
// declared in errors.go, possibly wrapped.
package service

import (
	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/events"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/tax"
	"github.com/MKhiriev/go-tax-keeper/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TaxService     TaxService
	PaymentService PaymentService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. Request models are
// validated before they reach the business logic.
func NewServices(storages *store.Storages, publisher events.Publisher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRequestValidator()
	calculator := tax.NewCalculator()

	authService := NewAuthService(storages.UserRepository, cfg.App, logger)
	userService := NewUserService(storages.UserRepository, cfg.App, logger)
	taxService := NewTaxService(storages.UserRepository, storages.TaxProfileRepository, calculator, cfg.Tax, logger)
	paymentService := NewPaymentService(storages.TaxProfileRepository, storages.PaymentRepository, storages.Transactor, publisher, logger)

	return &Services{
		AuthService:    NewAuthValidationService(validator).Wrap(authService),
		UserService:    NewUserValidationService(validator).Wrap(userService),
		TaxService:     NewTaxValidationService(validator).Wrap(taxService),
		PaymentService: NewPaymentValidationService(validator).Wrap(paymentService),
		AppInfoService: appInfoService,
	}, nil
}
