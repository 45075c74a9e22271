// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/users/register", models.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: testPassword,
	}, "")

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var login models.LoginResponse
	decodeData(t, rec, &login)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "Bearer "+login.Token, rec.Header().Get("Authorization"))
	assert.Equal(t, "asha@example.com", login.User.Email)
	assert.Equal(t, models.RoleTaxpayer, login.User.Role)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestRegister_Errors(t *testing.T) {
	s := newTestServer(t)
	s.signUp(t, "taken@example.com", models.RoleTaxpayer)

	tests := []struct {
		name          string
		body          any
		expectedCode  int
		expectedField string
	}{
		{
			name:         "malformed JSON",
			body:         `{"email":`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: models.RegisterRequest{
				Name: "Other", Email: "taken@example.com", Password: testPassword,
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "invalid email",
			body: models.RegisterRequest{
				Name: "Other", Email: "not-an-email", Password: testPassword,
			},
			expectedCode:  http.StatusBadRequest,
			expectedField: "email",
		},
		{
			name: "short password",
			body: models.RegisterRequest{
				Name: "Other", Email: "short@example.com", Password: "short",
			},
			expectedCode:  http.StatusBadRequest,
			expectedField: "password",
		},
		{
			name: "unknown role",
			body: models.RegisterRequest{
				Name: "Other", Email: "role@example.com", Password: testPassword, Role: "auditor",
			},
			expectedCode:  http.StatusBadRequest,
			expectedField: "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/users/register", tt.body, "")

			require.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Message)
			if tt.expectedField != "" {
				assert.Contains(t, env.Details, tt.expectedField)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)
	user, _ := s.signUp(t, "login@example.com", models.RoleTaxpayer)

	t.Run("valid credentials", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/users/login", models.LoginRequest{
			Email: "login@example.com", Password: testPassword,
		}, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var login models.LoginResponse
		decodeData(t, rec, &login)
		assert.Equal(t, user.UserID, login.User.UserID)
		assert.True(t, strings.HasPrefix(rec.Header().Get("Authorization"), "Bearer "))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/users/login", models.LoginRequest{
			Email: "login@example.com", Password: "wrong-password",
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Header().Get("Authorization"))
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := s.do(t, http.MethodPost, "/api/users/login", models.LoginRequest{
			Email: "nobody@example.com", Password: testPassword,
		}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	user, token := s.signUp(t, "owner@example.com", models.RoleTaxpayer)
	other, _ := s.signUp(t, "other@example.com", models.RoleTaxpayer)
	_, adminToken := s.signUp(t, "admin@example.com", models.RoleAdmin)

	tests := []struct {
		name         string
		path         string
		token        string
		expectedCode int
	}{
		{"own profile", "/api/users/profile/" + strconv.FormatInt(user.UserID, 10), token, http.StatusOK},
		{"someone else", "/api/users/profile/" + strconv.FormatInt(other.UserID, 10), token, http.StatusForbidden},
		{"admin reads anyone", "/api/users/profile/" + strconv.FormatInt(other.UserID, 10), adminToken, http.StatusOK},
		{"admin reads unknown", "/api/users/profile/999", adminToken, http.StatusNotFound},
		{"non numeric id", "/api/users/profile/abc", token, http.StatusBadRequest},
		{"negative id", "/api/users/profile/-1", token, http.StatusBadRequest},
		{"without token", "/api/users/profile/1", "", http.StatusUnauthorized},
		{"garbage token", "/api/users/profile/1", "garbage", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.path, nil, tt.token)
			assert.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
		})
	}
}

func TestUpdateUser(t *testing.T) {
	s := newTestServer(t)
	user, token := s.signUp(t, "update@example.com", models.RoleTaxpayer)
	s.signUp(t, "busy@example.com", models.RoleTaxpayer)
	path := "/api/users/profile/" + strconv.FormatInt(user.UserID, 10)

	rec := s.do(t, http.MethodPut, path, models.UpdateUserRequest{
		Name: "Renamed", Email: "renamed@example.com",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.User
	decodeData(t, rec, &updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "renamed@example.com", updated.Email)

	rec = s.do(t, http.MethodPut, path, models.UpdateUserRequest{
		Name: "Renamed", Email: "busy@example.com",
	}, token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPut, path, `{"name":`, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePassword(t *testing.T) {
	s := newTestServer(t)
	user, token := s.signUp(t, "pwd@example.com", models.RoleTaxpayer)
	path := "/api/users/change-password/" + strconv.FormatInt(user.UserID, 10)

	rec := s.do(t, http.MethodPost, path, models.ChangePasswordRequest{
		CurrentPassword: "not-my-password", NewPassword: "new-password-1",
	}, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodPost, path, models.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: testPassword,
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, path, models.ChangePasswordRequest{
		CurrentPassword: testPassword, NewPassword: "new-password-1",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "password changed", decodeEnvelope(t, rec).Message)

	rec = s.do(t, http.MethodPost, "/api/users/login", models.LoginRequest{
		Email: "pwd@example.com", Password: "new-password-1",
	}, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListTaxpayers(t *testing.T) {
	s := newTestServer(t)
	_, token := s.signUp(t, "payer1@example.com", models.RoleTaxpayer)
	s.signUp(t, "payer2@example.com", models.RoleTaxpayer)
	_, adminToken := s.signUp(t, "admin@example.com", models.RoleAdmin)

	rec := s.do(t, http.MethodGet, "/api/users/taxpayers", nil, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/users/taxpayers", nil, adminToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var users []models.User
	decodeData(t, rec, &users)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.Equal(t, models.RoleTaxpayer, u.Role)
	}
}
