// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession() models.Session {
	return models.Session{
		Server:  "http://localhost:8080",
		UserID:  7,
		Email:   "asha@example.com",
		Role:    models.RoleTaxpayer,
		Token:   "token-value",
		SavedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestSessionStore_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	require.NoError(t, NewSessionStore(path).Save(ctx, testSession()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// a fresh store reads what the previous run saved
	got, err := NewSessionStore(path).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSession(), got)
}

func TestSessionStore_LoadWithoutSession(t *testing.T) {
	ctx := context.Background()

	_, err := NewSessionStore(filepath.Join(t.TempDir(), "missing.json")).Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = NewSessionStore("").Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewSessionStore(path).Load(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStore_Clear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewSessionStore(path)

	require.NoError(t, s.Save(ctx, testSession()))
	require.NoError(t, s.Clear(ctx))

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// clearing twice is fine
	assert.NoError(t, s.Clear(ctx))
}

func TestSessionStore_InMemory(t *testing.T) {
	ctx := context.Background()
	s := NewSessionStore(InMemorySessionPath)

	require.NoError(t, s.Save(ctx, testSession()))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-value", got.Token)

	require.NoError(t, s.Clear(ctx))
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
