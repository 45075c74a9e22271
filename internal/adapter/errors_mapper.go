// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusUnprocessableEntity: ErrUnprocessable,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrors[status]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	respErr := &ResponseError{StatusCode: status, kind: kind}

	var env envelope[json.RawMessage]
	if err := json.Unmarshal(resp.Body(), &env); err == nil && env.Message != "" {
		respErr.Message = env.Message
		respErr.Details = env.Details
	} else {
		respErr.Message = strings.TrimSpace(string(resp.Body()))
	}
	if respErr.Message == "" {
		respErr.Message = http.StatusText(status)
	}

	return respErr
}
