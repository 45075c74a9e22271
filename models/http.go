// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Response is the JSON envelope of every REST response.
type Response struct {
	// Success is false for every error response.
	Success bool `json:"success"`

	// Message is a human readable summary, always set on errors.
	Message string `json:"message,omitempty"`

	// Data holds the payload of successful responses.
	Data any `json:"data,omitempty"`

	// Details maps request fields to validation messages.
	Details map[string]string `json:"details,omitempty"`
}

// StatusResponse is returned by GET /api.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
