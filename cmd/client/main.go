// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-vpn-pilot/internal/client"
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/tui"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		// the file logger needs the config, so this one goes to stderr
		logger.NewLogger("vpn-pilot-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("vpn-pilot-client", cfg.App.LogFile)
	log.Info().
		Stringer("build", buildInfo).
		Str("mode", client.Mode(cfg)).
		Msg("starting client")

	services, closer, err := client.NewClientServices(context.Background(), cfg, log)
	if err != nil {
		fatal(log, err, "create client services")
	}

	ui, err := tui.New(services, buildInfo, client.Mode(cfg), log)
	if err != nil {
		fatal(log, err, "error creating ui")
	}

	app, err := client.NewApp(services, ui, closer, log)
	if err != nil {
		fatal(log, err, "init client app error")
	}

	if err = app.Run(); err != nil {
		fatal(log, err, "client run error")
	}
}

// fatal logs to the client log file and repeats the error on stderr, which
// the user actually sees.
func fatal(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
