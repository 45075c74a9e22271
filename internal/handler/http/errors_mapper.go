// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-tax-keeper/internal/logger"
	"github.com/MKhiriev/go-tax-keeper/internal/service"
	"github.com/MKhiriev/go-tax-keeper/internal/utils"
	"github.com/MKhiriev/go-tax-keeper/internal/validators"
)

// conflictRetryAfter is the Retry-After hint sent with ErrConflict.
const conflictRetryAfter = 1

// errorStatuses is checked in order: more specific errors come before the
// errors they wrap.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidInput, http.StatusBadRequest},
	{service.ErrVersionIsNotSpecified, http.StatusBadRequest},
	{service.ErrNotFound, http.StatusNotFound},
	{service.ErrDuplicateProfile, http.StatusConflict},
	{service.ErrDuplicateEmail, http.StatusConflict},
	{service.ErrConflict, http.StatusConflict},
	{service.ErrOwnershipMismatch, http.StatusForbidden},
	{service.ErrForbidden, http.StatusForbidden},
	{service.ErrAlreadySettled, http.StatusUnprocessableEntity},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrStorageFailure, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError renders err with the status it maps to. Server-side
// failures are reported with a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if errors.Is(err, service.ErrConflict) {
		w.Header().Set("Retry-After", strconv.Itoa(conflictRetryAfter))
	}

	utils.WriteError(w, message, validators.Details(err), status)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("bad request")
	utils.WriteError(w, err.Error(), nil, http.StatusBadRequest)
}
