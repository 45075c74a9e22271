// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// checkAccess allows the call when ctx carries no identity (internal
// callers), when the authenticated user owns the record, or when the user
// is an admin.
func checkAccess(ctx context.Context, ownerID int64) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	if userID == ownerID {
		return nil
	}
	if role, _ := utils.GetRoleFromContext(ctx); role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}

// requireAdmin rejects authenticated non-admin callers.
func requireAdmin(ctx context.Context) error {
	if _, ok := utils.GetUserIDFromContext(ctx); !ok {
		return nil
	}
	if role, _ := utils.GetRoleFromContext(ctx); role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}

// resolveUserID returns requested, or the authenticated user when requested
// is zero.
func resolveUserID(ctx context.Context, requested int64) (int64, error) {
	if requested > 0 {
		return requested, nil
	}
	if userID, ok := utils.GetUserIDFromContext(ctx); ok {
		return userID, nil
	}
	return 0, ErrInvalidInput
}
