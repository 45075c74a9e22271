// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/adapter"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// clientSession loads the saved session into the adapter before
// authenticated calls.
type clientSession struct {
	sessions store.SessionStore
	adapter  adapter.ServerAdapter
	server   string

	logger *logger.Logger
}

// restore returns the saved session and installs its token. Sessions
// issued by another server are ignored.
func (c *clientSession) restore(ctx context.Context) (models.Session, error) {
	session, err := c.sessions.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	if c.server != "" && session.Server != c.server {
		c.logger.Debug().Str("saved", session.Server).Str("configured", c.server).Msg("saved session belongs to another server")
		return models.Session{}, ErrNotLoggedIn
	}

	c.adapter.SetToken(session.Token)
	return session, nil
}

func (c *clientSession) save(ctx context.Context, login models.LoginResponse) error {
	err := c.sessions.Save(ctx, models.Session{
		Server:  c.server,
		UserID:  login.User.UserID,
		Email:   login.User.Email,
		Role:    login.User.Role,
		Token:   login.Token,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// userID resolves a zero id to the logged-in user.
func (c *clientSession) userID(ctx context.Context, userID int64) (int64, error) {
	session, err := c.restore(ctx)
	if err != nil {
		return 0, err
	}
	if userID == 0 {
		return session.UserID, nil
	}
	return userID, nil
}
