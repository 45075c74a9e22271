// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable request")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")

	ErrInvalidAddress  = errors.New("invalid server address")
	ErrInvalidResponse = errors.New("invalid server response")
)

// ResponseError is a non-2xx answer of the server.
type ResponseError struct {
	StatusCode int
	// Message is the message of the server's error envelope, or the raw
	// body when the response was not an envelope.
	Message string
	Details map[string]string

	kind error
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (%d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%d): %s", e.kind, e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.kind
}
