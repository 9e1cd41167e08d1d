// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
)

// ClientServices is what the terminal client drives, either against the
// local CLI or against a daemon.
type ClientServices struct {
	VPNService VPNService
	History    HistoryReader
	Catalog    *Catalog
}

// NewLocalClientServices drives the CLI through executor and records
// state-changing operations in repository.
func NewLocalClientServices(executor adapter.CommandExecutor, repository store.HistoryRepository, logger *logger.Logger) *ClientServices {
	history := NewHistoryService(repository, utils.NewUUIDGenerator(), logger)
	session := NewRecordingSession(history, logger).Wrap(NewSession(executor, logger))

	return &ClientServices{
		VPNService: session,
		History:    history,
		Catalog:    NewCatalog(session),
	}
}

// NewRemoteClientServices forwards everything to the daemon behind
// daemonAdapter. History is recorded by the daemon itself.
func NewRemoteClientServices(daemonAdapter adapter.DaemonAdapter, logger *logger.Logger) *ClientServices {
	session := NewRemoteSession(daemonAdapter, logger)

	return &ClientServices{
		VPNService: session,
		History:    NewRemoteHistoryReader(daemonAdapter),
		Catalog:    NewCatalog(session),
	}
}
