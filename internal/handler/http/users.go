// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	h.writeLogin(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int64("id", user.UserID).Msg("user successfully logged in")
	h.writeLogin(w, r, user, http.StatusOK)
}

// writeLogin issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) writeLogin(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteSuccess(w, models.LoginResponse{Token: token.SignedString, User: user}, status)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, user, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	var req models.UpdateUserRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, r, err)
		return
	}

	var req models.ChangePasswordRequest
	if err = decodeJSON(w, r, &req); err != nil {
		writeBadRequest(w, r, err)
		return
	}

	if err = h.services.UserService.ChangePassword(r.Context(), userID, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.Response{Success: true, Message: "password changed"}, http.StatusOK)
}

func (h *Handler) listTaxpayers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListTaxpayers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteSuccess(w, users, http.StatusOK)
}
