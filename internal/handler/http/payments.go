// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
)

func (h *Handler) applyPayment(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	result, err := h.services.PaymentService.ApplyPayment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().
		Int64("payment_id", result.Payment.ID).
		Int64("tax_profile_id", result.TaxProfile.ID).
		Str("status", string(result.TaxProfile.Status)).
		Msg("payment applied")

	utils.WriteSuccess(w, result, http.StatusCreated)
}

func (h *Handler) getPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	payment, err := h.services.PaymentService.GetPayment(r.Context(), paymentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, payment, http.StatusOK)
}

func (h *Handler) listUserPayments(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	payments, err := h.services.PaymentService.ListUserPayments(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, payments, http.StatusOK)
}

func (h *Handler) paymentSummary(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	summary, err := h.services.PaymentService.PaymentSummary(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, summary, http.StatusOK)
}

func (h *Handler) listTaxProfilePayments(w http.ResponseWriter, r *http.Request) {
	profileID, err := pathID(r, "taxProfileId")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	payments, err := h.services.PaymentService.ListTaxProfilePayments(r.Context(), profileID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, payments, http.StatusOK)
}
