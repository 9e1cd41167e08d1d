// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/handler"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/internal/server"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/internal/workers"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("vpn-pilot-server", buildInfo)

	log := logger.NewLogger("vpn-pilot-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a stamped binary reports its own version over the configured one
	if buildInfo.Stamped() {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("binary", cfg.App.Binary).
		Bool("fake", cfg.App.Fake).
		Str("address", cfg.Server.HTTPAddress).
		Dur("status_interval", cfg.Workers.StatusInterval).
		Msg("received configs")

	m := metrics.New()

	var executor adapter.CommandExecutor
	if cfg.App.Fake {
		executor = adapter.NewFakeExecutor(false, false)
	} else {
		executor = adapter.NewExecExecutor(cfg.App.Binary, log)
	}
	executor = adapter.NewInstrumentedExecutor(executor, m)

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB.DSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(executor, storages, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
