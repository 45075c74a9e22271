// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tax-keeper/models"
)

type clientAuthService struct {
	session *clientSession
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	login, err := a.session.adapter.Register(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	if err = a.session.save(ctx, login); err != nil {
		return models.User{}, err
	}
	return login.User, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	login, err := a.session.adapter.Login(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}
	if err = a.session.save(ctx, login); err != nil {
		return models.User{}, err
	}
	return login.User, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.session.adapter.SetToken("")
	if err := a.session.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	return a.session.restore(ctx)
}

func (a *clientAuthService) ServerVersion(ctx context.Context) (string, error) {
	version, err := a.session.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}
