// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withGZip)

		r.Get("/api/session", h.getSession)
		r.Get("/api/account", h.getAccount)
		r.Get("/api/status", h.getStatus)
		r.Get("/api/countries", h.getCountries)
		r.Get("/api/countries/{country}/cities", h.getCities)

		r.Post("/api/login", h.login)
		r.Post("/api/logout", h.logout)
		r.Post("/api/connect", h.connect)
		r.Post("/api/disconnect", h.disconnect)

		r.Get("/api/history", h.getHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
