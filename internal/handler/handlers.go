// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the daemon's transport handlers.
package handler

import (
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/handler/http"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.ServerHTTP, m *metrics.Metrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("func", "NewHandlers").Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, m, logger)}, nil
}
