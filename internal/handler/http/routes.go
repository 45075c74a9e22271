// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api", h.getStatus)
	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		// routes without authorization
		r.With(h.withRateLimit).Post("/register", h.register)
		r.With(h.withRateLimit).Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/profile/{id}", h.getUser)
			r.Put("/profile/{id}", h.updateUser)
			r.Post("/change-password/{id}", h.changePassword)
			r.With(h.adminOnly).Get("/taxpayers", h.listTaxpayers)
		})
	})

	router.Route("/api/tax-profiles", func(r chi.Router) {
		r.Post("/calculate", h.previewTax)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/", h.createTaxProfile)
			r.Get("/{id}", h.getTaxProfile)
			r.Get("/user/{userId}", h.listTaxProfiles)
			r.Get("/user/{userId}/current", h.currentTaxProfile)
		})
	})

	router.Route("/api/payments", func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/", h.applyPayment)
		r.Get("/{id}", h.getPayment)
		r.Get("/user/{userId}", h.listUserPayments)
		r.Get("/user/{userId}/summary", h.paymentSummary)
		r.Get("/tax-profile/{taxProfileId}", h.listTaxProfilePayments)
	})

	return router
}
