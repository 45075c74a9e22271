// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tax-keeper/internal/adapter"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
)

type ClientServices struct {
	AuthService    ClientAuthService
	UserService    ClientUserService
	TaxService     ClientTaxService
	PaymentService ClientPaymentService
}

// NewClientServices wires the client services. server is the address the
// saved session is bound to.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, server string, logger *logger.Logger) *ClientServices {
	session := &clientSession{
		sessions: localStore.SessionStore,
		adapter:  serverAdapter,
		server:   server,
		logger:   logger,
	}

	return &ClientServices{
		AuthService:    &clientAuthService{session: session},
		UserService:    &clientUserService{session: session},
		TaxService:     &clientTaxService{session: session},
		PaymentService: &clientPaymentService{session: session},
	}
}
