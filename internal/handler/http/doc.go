// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the tax keeper.
//
// Every response uses the [models.Response] envelope. Service errors are
// translated to status codes in errors_mapper.go. Authentication, request
// tracing, access logging, compression and rate limiting are handled by the
// middleware in this package before requests reach the service layer.
package http
