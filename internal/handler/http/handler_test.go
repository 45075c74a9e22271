// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/events"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "password123"

type testServer struct {
	handler *Handler
	router  http.Handler
	mem     *store.MemoryStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "go-tax-keeper-test",
			TokenDuration: time.Hour,
			PasswordCost:  bcrypt.MinCost,
			Version:       "v1.2.3-test",
		},
		Tax:    config.Tax{DefaultFiscalYear: models.DefaultFiscalYear},
		Server: config.Server{RequestTimeout: 5 * time.Second},
	}

	mem := store.NewMemoryStore(time.Second)
	services, err := service.NewServices(store.NewMemoryStorages(mem), events.NopPublisher{}, cfg, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, nil, cfg.Server, logger.Nop())
	return &testServer{handler: h, router: h.Init(), mem: mem}
}

// rebuild re-creates the router after the handler was modified.
func (s *testServer) rebuild() {
	s.router = s.handler.Init()
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// signUp registers an account through the API and returns it with its token.
func (s *testServer) signUp(t *testing.T, email string, role models.Role) (models.User, string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/users/register", models.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: testPassword,
		Role:     role,
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var login models.LoginResponse
	decodeData(t, rec, &login)
	return login.User, login.Token
}

func (s *testServer) createProfile(t *testing.T, userID int64, taxDue string) models.TaxProfile {
	t.Helper()

	due := decimal.RequireFromString(taxDue)
	profile, err := s.mem.TaxProfiles().Create(context.Background(), models.TaxProfile{
		UserID:     userID,
		FiscalYear: models.DefaultFiscalYear,
		Income:     decimal.Zero,
		TaxDue:     due,
		TaxPaid:    decimal.Zero,
		Status:     models.StatusFor(due, decimal.Zero),
	})
	require.NoError(t, err)
	return profile
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Details map[string]string `json:"details"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.True(t, env.Success, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestNewHandler_NilLimiterDisablesRateLimiting(t *testing.T) {
	h := NewHandler(&service.Services{}, nil, config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.Nil(t, h.limiter)
	assert.NotNil(t, h.traceIDs)
}

func TestInit_RegistersRoutes(t *testing.T) {
	s := newTestServer(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/profile/1"},
		{http.MethodPut, "/api/users/profile/1"},
		{http.MethodPost, "/api/users/change-password/1"},
		{http.MethodGet, "/api/users/taxpayers"},
		{http.MethodPost, "/api/tax-profiles/"},
		{http.MethodGet, "/api/tax-profiles/1"},
		{http.MethodGet, "/api/tax-profiles/user/1"},
		{http.MethodGet, "/api/tax-profiles/user/1/current"},
		{http.MethodPost, "/api/payments/"},
		{http.MethodGet, "/api/payments/1"},
		{http.MethodGet, "/api/payments/user/1"},
		{http.MethodGet, "/api/payments/user/1/summary"},
		{http.MethodGet, "/api/payments/tax-profile/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rec := s.do(t, route.method, route.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/unknown", nil, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "/api/unknown")
}

func TestInit_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodDelete, "/api/users/login", nil, "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.False(t, decodeEnvelope(t, rec).Success)
}

func TestGetStatus(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var status models.StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, models.StatusResponse{Status: "ok", Version: "v1.2.3-test"}, status)
}

func TestGetServerVersion(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/version", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v1.2.3-test", rec.Body.String())
}
