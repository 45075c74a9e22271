// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
)

// previewTax computes a liability without persisting anything.
func (h *Handler) previewTax(w http.ResponseWriter, r *http.Request) {
	var req models.TaxPreviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	computation, err := h.services.TaxService.PreviewTax(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, computation, http.StatusOK)
}

func (h *Handler) createTaxProfile(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaxProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	profile, err := h.services.TaxService.CreateTaxProfile(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, profile, http.StatusCreated)
}

func (h *Handler) getTaxProfile(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	profile, err := h.services.TaxService.GetTaxProfile(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, profile, http.StatusOK)
}

func (h *Handler) listTaxProfiles(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	profiles, err := h.services.TaxService.ListTaxProfiles(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, profiles, http.StatusOK)
}

// currentTaxProfile returns the profile for ?fiscal_year=, or for the
// configured default year when the parameter is absent.
func (h *Handler) currentTaxProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	fiscalYear := r.URL.Query().Get("fiscal_year")
	profile, err := h.services.TaxService.CurrentTaxProfile(r.Context(), userID, fiscalYear)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, profile, http.StatusOK)
}
