// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore keeps the client's login session between runs.
type SessionStore interface {
	Save(ctx context.Context, session models.Session) error
	// Load returns ErrSessionNotFound when nobody is logged in.
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}
