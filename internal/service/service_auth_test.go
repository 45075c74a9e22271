// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/mock"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/internal/validators"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── RegisterUser ──────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	services, mem := newTestServices(t)

	user, err := services.AuthService.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "  Asha Rao ",
		Email:    " Asha.Rao@Example.COM ",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.UserID)
	assert.Equal(t, "Asha Rao", user.Name)
	assert.Equal(t, "asha.rao@example.com", user.Email)
	assert.Equal(t, models.RoleTaxpayer, user.Role)
	assert.False(t, user.CreatedAt.IsZero())

	stored, err := mem.FindUserByID(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	require.NoError(t, utils.CheckPassword(stored.PasswordHash, "password123"))
}

func TestAuthService_RegisterUser_Admin(t *testing.T) {
	services, _ := newTestServices(t)

	user := registerUser(t, services, "root@example.com", models.RoleAdmin)
	assert.True(t, user.IsAdmin())
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	services, _ := newTestServices(t)
	registerUser(t, services, "dup@example.com", models.RoleTaxpayer)

	_, err := services.AuthService.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "Second",
		Email:    "DUP@example.com",
		Password: "password456",
	})
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestAuthService_RegisterUser_Validation(t *testing.T) {
	services, _ := newTestServices(t)

	tests := []struct {
		name      string
		req       models.RegisterRequest
		wantField string
	}{
		{name: "missing name", req: models.RegisterRequest{Email: "a@example.com", Password: "password123"}, wantField: "name"},
		{name: "bad email", req: models.RegisterRequest{Name: "A", Email: "not-an-email", Password: "password123"}, wantField: "email"},
		{name: "short password", req: models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"}, wantField: "password"},
		{name: "unknown role", req: models.RegisterRequest{Name: "A", Email: "a@example.com", Password: "password123", Role: "root"}, wantField: "role"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AuthService.RegisterUser(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
			require.ErrorIs(t, err, validators.ErrValidation)
			assert.Contains(t, validators.Details(err), tt.wantField)
		})
	}
}

func TestAuthService_RegisterUser_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testConfig().App, logger.Nop())

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("too many connections"))

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Name:     "A",
		Email:    "a@example.com",
		Password: "password123",
	})
	require.ErrorIs(t, err, ErrStorageFailure)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	services, _ := newTestServices(t)
	registered := registerUser(t, services, "login@example.com", models.RoleTaxpayer)

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "success", req: models.LoginRequest{Email: "login@example.com", Password: "password123"}},
		{name: "email case is ignored", req: models.LoginRequest{Email: "LOGIN@example.com", Password: "password123"}},
		{name: "padded email", req: models.LoginRequest{Email: "  Login@Example.com ", Password: "password123"}},
		{name: "wrong password", req: models.LoginRequest{Email: "login@example.com", Password: "password124"}, wantErr: ErrInvalidCredentials},
		{name: "unknown email", req: models.LoginRequest{Email: "nobody@example.com", Password: "password123"}, wantErr: ErrInvalidCredentials},
		{name: "missing password", req: models.LoginRequest{Email: "login@example.com"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := services.AuthService.Login(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, registered.UserID, user.UserID)
		})
	}
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(users, testConfig().App, logger.Nop())

	users.EXPECT().FindUserByEmail(gomock.Any(), "a@example.com").
		Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "A@example.com", Password: "password123"})
	require.ErrorIs(t, err, ErrStorageFailure)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── tokens ────────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	token, err := services.AuthService.CreateToken(ctx, models.User{UserID: 42, Role: models.RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := services.AuthService.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
	assert.Equal(t, "go-tax-keeper-test", parsed.Issuer)
}

func TestAuthService_ParseToken_Errors(t *testing.T) {
	cfg := testConfig().App
	svc := NewAuthService(nil, cfg, logger.Nop())
	ctx := context.Background()

	expired, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, models.RoleTaxpayer, -time.Minute, cfg.TokenSignKey)
	require.NoError(t, err)
	foreign, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, models.RoleTaxpayer, time.Hour, "another-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", 1, models.RoleTaxpayer, time.Hour, cfg.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "expired", token: expired.SignedString, wantErr: ErrTokenIsExpired},
		{name: "foreign signature", token: foreign.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "wrong issuer", token: otherIssuer.SignedString, wantErr: ErrTokenIsExpiredOrInvalid},
		{name: "garbage", token: "not.a.token", wantErr: ErrTokenIsExpiredOrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tt.token)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_CreateToken_MissingKey(t *testing.T) {
	cfg := testConfig().App
	cfg.TokenSignKey = ""
	svc := NewAuthService(nil, cfg, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1, Role: models.RoleTaxpayer})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, testConfig().App.PasswordCost)
	require.NoError(t, err)
	return hash
}
