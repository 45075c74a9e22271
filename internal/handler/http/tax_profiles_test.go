// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/MKhiriev/go-tax-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewTax(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/tax-profiles/calculate", `{"income": 2000000, "fiscal_year": "2023-2024"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var computation models.TaxComputation
	decodeData(t, rec, &computation)
	assertDecimal(t, "1925000", computation.TaxableIncome)
	assertDecimal(t, "125000", computation.TaxDue)
	assert.Equal(t, "2023-2024", computation.FiscalYear)
}

func TestPreviewTax_Errors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"negative income", `{"income": -1}`},
		{"non numeric income", `{"income": "lots"}`},
		{"malformed fiscal year", `{"income": 100, "fiscal_year": "2023"}`},
		{"unsupported fiscal year", `{"income": 100, "fiscal_year": "2030-2031"}`},
		{"malformed JSON", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/api/tax-profiles/calculate", tt.body, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.False(t, decodeEnvelope(t, rec).Success)
		})
	}
}

func TestCreateTaxProfile(t *testing.T) {
	s := newTestServer(t)
	user, token := s.signUp(t, "profile@example.com", models.RoleTaxpayer)

	rec := s.do(t, http.MethodPost, "/api/tax-profiles/", `{"income": 2000000}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var profile models.TaxProfile
	decodeData(t, rec, &profile)
	assert.Equal(t, user.UserID, profile.UserID)
	assert.Equal(t, models.DefaultFiscalYear, profile.FiscalYear)
	assertDecimal(t, "125000", profile.TaxDue)
	assertDecimal(t, "0", profile.TaxPaid)
	assert.Equal(t, models.StatusPending, profile.Status)

	rec = s.do(t, http.MethodPost, "/api/tax-profiles/", `{"income": 3000000}`, token)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateTaxProfile_ForAnotherUser(t *testing.T) {
	s := newTestServer(t)
	user, _ := s.signUp(t, "payer@example.com", models.RoleTaxpayer)
	_, otherToken := s.signUp(t, "other@example.com", models.RoleTaxpayer)
	_, adminToken := s.signUp(t, "admin@example.com", models.RoleAdmin)

	body := models.CreateTaxProfileRequest{UserID: user.UserID}
	body.Income = mustDecimal(t, "1500000")

	rec := s.do(t, http.MethodPost, "/api/tax-profiles/", body, otherToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/tax-profiles/", body, adminToken)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var profile models.TaxProfile
	decodeData(t, rec, &profile)
	assert.Equal(t, user.UserID, profile.UserID)
}

func TestTaxProfileReads(t *testing.T) {
	s := newTestServer(t)
	user, token := s.signUp(t, "reader@example.com", models.RoleTaxpayer)
	_, otherToken := s.signUp(t, "other@example.com", models.RoleTaxpayer)
	profile := s.createProfile(t, user.UserID, "1000")
	userPath := strconv.FormatInt(user.UserID, 10)

	t.Run("get by id", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/"+strconv.FormatInt(profile.ID, 10), nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.TaxProfile
		decodeData(t, rec, &got)
		assert.Equal(t, profile.ID, got.ID)
		assertDecimal(t, "1000", got.TaxDue)
	})

	t.Run("get by id of another user", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/"+strconv.FormatInt(profile.ID, 10), nil, otherToken)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/999", nil, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/user/"+userPath, nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var profiles []models.TaxProfile
		decodeData(t, rec, &profiles)
		require.Len(t, profiles, 1)
		assert.Equal(t, profile.ID, profiles[0].ID)
	})

	t.Run("current for default year", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/user/"+userPath+"/current", nil, token)
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.TaxProfile
		decodeData(t, rec, &got)
		assert.Equal(t, profile.ID, got.ID)
	})

	t.Run("current for year without profile", func(t *testing.T) {
		rec := s.do(t, http.MethodGet, "/api/tax-profiles/user/"+userPath+"/current?fiscal_year=2024-2025", nil, token)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
