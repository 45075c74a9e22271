// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		RetryCount:     2,
	}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeData(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(models.Response{Success: true, Data: data}))
}

func writeFailure(w http.ResponseWriter, status int, message string, details map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{Message: message, Details: details})
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://tax.example.com/", "https://tax.example.com", false},
		{"  http://127.0.0.1:9000  ", "http://127.0.0.1:9000", false},
		{"", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestRegister_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/users/register", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var req models.RegisterRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "asha@example.com", req.Email)

		writeData(t, w, http.StatusCreated, models.LoginResponse{
			Token: "issued-token",
			User:  models.User{UserID: 7, Email: req.Email, Role: models.RoleTaxpayer},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	login, err := a.Register(context.Background(), models.RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.EqualValues(t, 7, login.User.UserID)
	assert.Equal(t, "issued-token", a.Token())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusUnauthorized, "invalid email or password", nil)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Email: "a@example.com", Password: "x"})

	require.ErrorIs(t, err, ErrUnauthorized)
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "invalid email or password", respErr.Message)
	assert.Empty(t, a.Token())
}

func TestAuthedRequests_SendBearerToken(t *testing.T) {
	var gotAuth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth.Store(r.Header.Get("Authorization"))
		assert.Equal(t, "/api/users/profile/7", r.URL.Path)
		writeData(t, w, http.StatusOK, models.User{UserID: 7, Name: "Asha"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  my-token ")

	user, err := a.GetUser(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
	assert.Equal(t, "Bearer my-token", gotAuth.Load())
}

func TestEndpoints(t *testing.T) {
	profile := models.TaxProfile{ID: 3, UserID: 7, FiscalYear: "2023-2024", TaxDue: decimal.NewFromInt(125000), Status: models.StatusPending}
	payment := models.Payment{ID: 11, UserID: 7, TaxProfileID: 3, Amount: decimal.NewFromInt(500), PaymentMethod: "card"}

	type call struct {
		method string
		path   string
		query  string
		data   any
	}

	tests := []struct {
		name   string
		expect call
		invoke func(a *httpServerAdapter) (any, error)
		check  func(t *testing.T, got any)
	}{
		{
			name:   "update user",
			expect: call{http.MethodPut, "/api/users/profile/7", "", models.User{UserID: 7, Name: "New"}},
			invoke: func(a *httpServerAdapter) (any, error) {
				return a.UpdateUser(context.Background(), 7, models.UpdateUserRequest{Name: "New", Email: "n@example.com"})
			},
			check: func(t *testing.T, got any) { assert.Equal(t, "New", got.(models.User).Name) },
		},
		{
			name:   "list taxpayers",
			expect: call{http.MethodGet, "/api/users/taxpayers", "", []models.User{{UserID: 1}, {UserID: 2}}},
			invoke: func(a *httpServerAdapter) (any, error) { return a.ListTaxpayers(context.Background()) },
			check:  func(t *testing.T, got any) { assert.Len(t, got.([]models.User), 2) },
		},
		{
			name:   "preview tax",
			expect: call{http.MethodPost, "/api/tax-profiles/calculate", "", models.TaxComputation{TaxDue: decimal.NewFromInt(125000)}},
			invoke: func(a *httpServerAdapter) (any, error) {
				return a.PreviewTax(context.Background(), models.TaxPreviewRequest{Income: decimal.NewFromInt(2000000)})
			},
			check: func(t *testing.T, got any) {
				assert.True(t, got.(models.TaxComputation).TaxDue.Equal(decimal.NewFromInt(125000)))
			},
		},
		{
			name:   "create tax profile",
			expect: call{http.MethodPost, "/api/tax-profiles/", "", profile},
			invoke: func(a *httpServerAdapter) (any, error) {
				return a.CreateTaxProfile(context.Background(), models.CreateTaxProfileRequest{Income: decimal.NewFromInt(2000000)})
			},
			check: func(t *testing.T, got any) { assert.EqualValues(t, 3, got.(models.TaxProfile).ID) },
		},
		{
			name:   "get tax profile",
			expect: call{http.MethodGet, "/api/tax-profiles/3", "", profile},
			invoke: func(a *httpServerAdapter) (any, error) { return a.GetTaxProfile(context.Background(), 3) },
			check:  func(t *testing.T, got any) { assert.Equal(t, models.StatusPending, got.(models.TaxProfile).Status) },
		},
		{
			name:   "list tax profiles",
			expect: call{http.MethodGet, "/api/tax-profiles/user/7", "", []models.TaxProfile{profile}},
			invoke: func(a *httpServerAdapter) (any, error) { return a.ListTaxProfiles(context.Background(), 7) },
			check:  func(t *testing.T, got any) { assert.Len(t, got.([]models.TaxProfile), 1) },
		},
		{
			name:   "current tax profile",
			expect: call{http.MethodGet, "/api/tax-profiles/user/7/current", "fiscal_year=2023-2024", profile},
			invoke: func(a *httpServerAdapter) (any, error) {
				return a.CurrentTaxProfile(context.Background(), 7, "2023-2024")
			},
			check: func(t *testing.T, got any) { assert.Equal(t, "2023-2024", got.(models.TaxProfile).FiscalYear) },
		},
		{
			name:   "apply payment",
			expect: call{http.MethodPost, "/api/payments/", "", models.PaymentResult{Payment: payment, TaxProfile: profile}},
			invoke: func(a *httpServerAdapter) (any, error) {
				return a.ApplyPayment(context.Background(), models.PaymentRequest{TaxProfileID: 3, Amount: decimal.NewFromInt(500), PaymentMethod: "card"})
			},
			check: func(t *testing.T, got any) { assert.EqualValues(t, 11, got.(models.PaymentResult).Payment.ID) },
		},
		{
			name:   "get payment",
			expect: call{http.MethodGet, "/api/payments/11", "", payment},
			invoke: func(a *httpServerAdapter) (any, error) { return a.GetPayment(context.Background(), 11) },
			check:  func(t *testing.T, got any) { assert.Equal(t, "card", got.(models.Payment).PaymentMethod) },
		},
		{
			name:   "list payments",
			expect: call{http.MethodGet, "/api/payments/user/7", "", []models.Payment{payment}},
			invoke: func(a *httpServerAdapter) (any, error) { return a.ListPayments(context.Background(), 7) },
			check:  func(t *testing.T, got any) { assert.Len(t, got.([]models.Payment), 1) },
		},
		{
			name:   "list tax profile payments",
			expect: call{http.MethodGet, "/api/payments/tax-profile/3", "", []models.Payment{payment, payment}},
			invoke: func(a *httpServerAdapter) (any, error) { return a.ListTaxProfilePayments(context.Background(), 3) },
			check:  func(t *testing.T, got any) { assert.Len(t, got.([]models.Payment), 2) },
		},
		{
			name:   "payment summary",
			expect: call{http.MethodGet, "/api/payments/user/7/summary", "", models.PaymentSummary{TotalPaid: decimal.NewFromInt(500), PaymentCount: 1}},
			invoke: func(a *httpServerAdapter) (any, error) { return a.PaymentSummary(context.Background(), 7) },
			check:  func(t *testing.T, got any) { assert.EqualValues(t, 1, got.(models.PaymentSummary).PaymentCount) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.expect.method, r.Method)
				assert.Equal(t, tt.expect.path, r.URL.Path)
				assert.Equal(t, tt.expect.query, r.URL.RawQuery)
				writeData(t, w, http.StatusOK, tt.expect.data)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			a.SetToken("token")

			got, err := tt.invoke(a)
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestChangePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/change-password/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.Response{Success: true, Message: "password changed"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.ChangePassword(context.Background(), 7, models.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})

	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("v1.2.3\n"))
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", version)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		expected error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusUnprocessableEntity, ErrUnprocessable},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeFailure(w, tt.status, "server says no", map[string]string{"amount": "is required"})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).GetPayment(context.Background(), 1)

			require.ErrorIs(t, err, tt.expected)
			var respErr *ResponseError
			require.ErrorAs(t, err, &respErr)
			assert.Equal(t, tt.status, respErr.StatusCode)
			assert.Equal(t, "server says no", respErr.Message)
			assert.Equal(t, "is required", respErr.Details["amount"])
		})
	}
}

func TestErrorMapping_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetPayment(context.Background(), 1)

	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, "gateway exploded", respErr.Message)
}

func TestApplyPayment_RetriesRetryableConflict(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			writeFailure(w, http.StatusConflict, "tax profile is being updated concurrently", nil)
			return
		}
		writeData(t, w, http.StatusCreated, models.PaymentResult{Payment: models.Payment{ID: 5}})
	}))
	defer srv.Close()

	result, err := newTestAdapter(t, srv.URL).ApplyPayment(context.Background(), models.PaymentRequest{TaxProfileID: 1, Amount: decimal.NewFromInt(1), PaymentMethod: "card"})

	require.NoError(t, err)
	assert.EqualValues(t, 5, result.Payment.ID)
	assert.EqualValues(t, 2, calls.Load())
}

func TestCreateTaxProfile_DuplicateIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeFailure(w, http.StatusConflict, "tax profile already exists for this fiscal year", nil)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).CreateTaxProfile(context.Background(), models.CreateTaxProfileRequest{})

	require.ErrorIs(t, err, ErrConflict)
	assert.EqualValues(t, 1, calls.Load())
}

func TestSend_InvalidEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).GetUser(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
