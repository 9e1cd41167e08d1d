// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Str("func", "NewHandler").Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		metrics:   m,
		logger:    logger,
	}
}
