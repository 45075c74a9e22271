// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-tax-keeper/models"
)

type clientUserService struct {
	session *clientSession
}

func (u *clientUserService) Profile(ctx context.Context) (models.User, error) {
	userID, err := u.session.userID(ctx, 0)
	if err != nil {
		return models.User{}, err
	}

	user, err := u.session.adapter.GetUser(ctx, userID)
	return user, mapAdapterError(err)
}

// UpdateProfile also refreshes the email of the saved session.
func (u *clientUserService) UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	session, err := u.session.restore(ctx)
	if err != nil {
		return models.User{}, err
	}

	user, err := u.session.adapter.UpdateUser(ctx, session.UserID, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	session.Email = user.Email
	if err = u.session.sessions.Save(ctx, session); err != nil {
		u.session.logger.Warn().Err(err).Msg("failed to refresh saved session")
	}
	return user, nil
}

func (u *clientUserService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	userID, err := u.session.userID(ctx, 0)
	if err != nil {
		return err
	}
	return mapAdapterError(u.session.adapter.ChangePassword(ctx, userID, req))
}

func (u *clientUserService) ListTaxpayers(ctx context.Context) ([]models.User, error) {
	if _, err := u.session.restore(ctx); err != nil {
		return nil, err
	}

	users, err := u.session.adapter.ListTaxpayers(ctx)
	return users, mapAdapterError(err)
}
