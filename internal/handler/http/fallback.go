// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tax-keeper/internal/utils"
)

func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "route "+r.Method+" "+r.URL.Path+" not found", nil, http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "method "+r.Method+" is not allowed for "+r.URL.Path, nil, http.StatusMethodNotAllowed)
}
