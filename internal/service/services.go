// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
)

// Services is the daemon's service set.
type Services struct {
	VPNService     VPNService
	HistoryService HistoryService
	AuthService    AuthService
	AppInfoService AppInfoService
	StatusWatchJob StatusWatchJob
}

// NewServices wires the daemon session: executor calls are serialized, and
// state-changing operations are recorded after the lock is released.
func NewServices(executor adapter.CommandExecutor, storages *store.Storages, cfg *config.ServerConfig, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App.Version)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	history := NewHistoryService(storages.HistoryRepository, utils.NewUUIDGenerator(), logger)

	session := NewSession(executor, logger)
	session = NewSerializedSession().Wrap(session)
	session = NewRecordingSession(history, logger).Wrap(session)

	return &Services{
		VPNService:     session,
		HistoryService: history,
		AuthService:    NewAuthService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, 0, logger),
		AppInfoService: appInfo,
		StatusWatchJob: NewStatusWatchJob(session, m, logger),
	}, nil
}
