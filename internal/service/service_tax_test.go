// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-tax-keeper/internal/config"
	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/mock"
	"github.com/MKhiriev/go-tax-keeper/internal/store"
	"github.com/MKhiriev/go-tax-keeper/internal/tax"
	"github.com/MKhiriev/go-tax-keeper/internal/validators"
	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTaxService_PreviewTax(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		req        models.TaxPreviewRequest
		wantTaxDue string
		wantErr    error
	}{
		{name: "default fiscal year", req: models.TaxPreviewRequest{Income: dec("2000000")}, wantTaxDue: "125000"},
		{name: "below exemption", req: models.TaxPreviewRequest{Income: dec("1275000"), FiscalYear: "2023-2024"}, wantTaxDue: "0"},
		{name: "one rupee above exemption", req: models.TaxPreviewRequest{Income: dec("1275001")}, wantTaxDue: "0.15"},
		{name: "negative income", req: models.TaxPreviewRequest{Income: dec("-1")}, wantErr: ErrInvalidIncome},
		{name: "unsupported fiscal year", req: models.TaxPreviewRequest{Income: dec("1"), FiscalYear: "2030-2031"}, wantErr: ErrInvalidFiscalYear},
		{name: "malformed fiscal year", req: models.TaxPreviewRequest{Income: dec("1"), FiscalYear: "2023"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			computation, err := services.TaxService.PreviewTax(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assertDecimal(t, tt.wantTaxDue, computation.TaxDue)
			assert.Equal(t, models.DefaultFiscalYear, computation.FiscalYear)
		})
	}
}

func TestTaxService_PreviewTax_MalformedFiscalYearDetails(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.TaxService.PreviewTax(context.Background(), models.TaxPreviewRequest{Income: dec("1"), FiscalYear: "2023-2025"})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, validators.Details(err), "fiscal_year")
}

func TestTaxService_CreateTaxProfile(t *testing.T) {
	services, _ := newTestServices(t)
	owner := registerUser(t, services, "owner@example.com", models.RoleTaxpayer)
	ctx := asUser(context.Background(), owner)

	profile, err := services.TaxService.CreateTaxProfile(ctx, models.CreateTaxProfileRequest{
		Income:     dec("2000000.456"),
		FiscalYear: "2023-2024",
	})
	require.NoError(t, err)

	assert.Equal(t, owner.UserID, profile.UserID)
	assertDecimal(t, "2000000.46", profile.Income)
	assertDecimal(t, "125000.09", profile.TaxDue)
	assert.True(t, profile.TaxPaid.IsZero())
	assert.Equal(t, models.StatusPending, profile.Status)

	_, err = services.TaxService.CreateTaxProfile(ctx, models.CreateTaxProfileRequest{Income: dec("10")})
	require.ErrorIs(t, err, ErrDuplicateProfile)
}

func TestTaxService_CreateTaxProfile_ZeroDueIsSettled(t *testing.T) {
	services, _ := newTestServices(t)
	owner := registerUser(t, services, "low@example.com", models.RoleTaxpayer)

	profile, err := services.TaxService.CreateTaxProfile(asUser(context.Background(), owner), models.CreateTaxProfileRequest{
		Income: dec("900000"),
	})
	require.NoError(t, err)

	assert.True(t, profile.TaxDue.IsZero())
	assert.Equal(t, models.StatusPaid, profile.Status)
}

func TestTaxService_CreateTaxProfile_Errors(t *testing.T) {
	services, _ := newTestServices(t)
	owner := registerUser(t, services, "owner@example.com", models.RoleTaxpayer)
	other := registerUser(t, services, "other@example.com", models.RoleTaxpayer)
	admin := registerUser(t, services, "admin@example.com", models.RoleAdmin)

	tests := []struct {
		name    string
		ctx     context.Context
		req     models.CreateTaxProfileRequest
		wantErr error
	}{
		{
			name:    "negative income",
			ctx:     asUser(context.Background(), owner),
			req:     models.CreateTaxProfileRequest{Income: dec("-5")},
			wantErr: ErrInvalidIncome,
		},
		{
			name:    "unsupported fiscal year",
			ctx:     asUser(context.Background(), owner),
			req:     models.CreateTaxProfileRequest{Income: dec("5"), FiscalYear: "2019-2020"},
			wantErr: ErrInvalidFiscalYear,
		},
		{
			name:    "for another user",
			ctx:     asUser(context.Background(), other),
			req:     models.CreateTaxProfileRequest{UserID: owner.UserID, Income: dec("5")},
			wantErr: ErrForbidden,
		},
		{
			name:    "admin for unknown user",
			ctx:     asUser(context.Background(), admin),
			req:     models.CreateTaxProfileRequest{UserID: 4040, Income: dec("5")},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "no user at all",
			ctx:     context.Background(),
			req:     models.CreateTaxProfileRequest{Income: dec("5")},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.TaxService.CreateTaxProfile(tt.ctx, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaxService_CreateTaxProfile_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	profiles := mock.NewMockTaxProfileRepository(ctrl)
	svc := NewTaxService(users, profiles, tax.NewCalculator(), config.Tax{}, logger.Nop())

	users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{UserID: 5}, nil)
	profiles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.TaxProfile) (models.TaxProfile, error) {
			assert.Equal(t, models.DefaultFiscalYear, p.FiscalYear)
			assert.Equal(t, models.StatusPending, p.Status)
			return models.TaxProfile{}, errors.New("connection reset by peer")
		},
	)

	_, err := svc.CreateTaxProfile(context.Background(), models.CreateTaxProfileRequest{UserID: 5, Income: dec("3000000")})
	require.ErrorIs(t, err, ErrStorageFailure)
}

func TestTaxService_Reads(t *testing.T) {
	services, mem := newTestServices(t)
	owner := registerUser(t, services, "owner@example.com", models.RoleTaxpayer)
	other := registerUser(t, services, "other@example.com", models.RoleTaxpayer)
	admin := registerUser(t, services, "admin@example.com", models.RoleAdmin)

	older := createProfile(t, mem, owner.UserID, "2022-2023", dec("10"))
	current := createProfile(t, mem, owner.UserID, "2023-2024", dec("20"))

	ownerCtx := asUser(context.Background(), owner)

	t.Run("list is latest fiscal year first", func(t *testing.T) {
		profiles, err := services.TaxService.ListTaxProfiles(ownerCtx, owner.UserID)
		require.NoError(t, err)
		require.Len(t, profiles, 2)
		assert.Equal(t, current.ID, profiles[0].ID)
		assert.Equal(t, older.ID, profiles[1].ID)
	})

	t.Run("current defaults the fiscal year", func(t *testing.T) {
		profile, err := services.TaxService.CurrentTaxProfile(ownerCtx, owner.UserID, "")
		require.NoError(t, err)
		assert.Equal(t, current.ID, profile.ID)

		profile, err = services.TaxService.CurrentTaxProfile(ownerCtx, owner.UserID, "2022-2023")
		require.NoError(t, err)
		assert.Equal(t, older.ID, profile.ID)
	})

	t.Run("current for a year without profile", func(t *testing.T) {
		_, err := services.TaxService.CurrentTaxProfile(ownerCtx, owner.UserID, "2021-2022")
		require.ErrorIs(t, err, ErrTaxProfileNotFound)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		otherCtx := asUser(context.Background(), other)

		_, err := services.TaxService.GetTaxProfile(otherCtx, current.ID)
		require.ErrorIs(t, err, ErrForbidden)

		_, err = services.TaxService.ListTaxProfiles(otherCtx, owner.UserID)
		require.ErrorIs(t, err, ErrForbidden)

		_, err = services.TaxService.CurrentTaxProfile(otherCtx, owner.UserID, "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin reads any profile", func(t *testing.T) {
		profile, err := services.TaxService.GetTaxProfile(asUser(context.Background(), admin), current.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.UserID, profile.UserID)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := services.TaxService.GetTaxProfile(ownerCtx, 999)
		require.ErrorIs(t, err, ErrTaxProfileNotFound)
	})

	t.Run("empty list", func(t *testing.T) {
		profiles, err := services.TaxService.ListTaxProfiles(asUser(context.Background(), other), other.UserID)
		require.NoError(t, err)
		assert.Empty(t, profiles)
	})
}

func TestNewTaxService_CustomDefaultFiscalYear(t *testing.T) {
	mem := store.NewMemoryStore(0)
	regime := tax.DefaultRegimes()[models.DefaultFiscalYear]
	regime.FiscalYear = "2024-2025"

	svc := NewTaxService(mem, mem.TaxProfiles(), tax.NewCalculator(regime), config.Tax{DefaultFiscalYear: "2024-2025"}, logger.Nop())

	computation, err := svc.PreviewTax(context.Background(), models.TaxPreviewRequest{Income: dec("2000000")})
	require.NoError(t, err)
	assert.Equal(t, "2024-2025", computation.FiscalYear)
	assertDecimal(t, "125000", computation.TaxDue)
}
