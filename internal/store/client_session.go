// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-tax-keeper/models"
)

// InMemorySessionPath keeps the session in process memory only.
const InMemorySessionPath = ":memory:"

type fileSessionStore struct {
	path     string
	inMemory bool

	mu      sync.RWMutex
	session *models.Session
}

// NewSessionStore returns a store persisting the session as JSON at path,
// readable only by the owner. An empty path or InMemorySessionPath keeps
// it in memory.
func NewSessionStore(path string) SessionStore {
	if path == "" {
		path = InMemorySessionPath
	}
	return &fileSessionStore{
		path:     path,
		inMemory: path == InMemorySessionPath,
	}
}

func (s *fileSessionStore) Save(_ context.Context, session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(&session); err != nil {
		return err
	}
	s.session = &session
	return nil
}

func (s *fileSessionStore) Load(_ context.Context) (models.Session, error) {
	s.mu.RLock()
	cached := s.session
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}
	if s.inMemory {
		return models.Session{}, ErrSessionNotFound
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, fmt.Errorf("read session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session file: %w", err)
	}
	if session.Token == "" {
		return models.Session{}, ErrSessionNotFound
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()

	return session, nil
}

func (s *fileSessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil
	if s.inMemory {
		return nil
	}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

func (s *fileSessionStore) persist(session *models.Session) error {
	if s.inMemory {
		return nil
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}
