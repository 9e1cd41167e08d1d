// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"syscall"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
)

const defaultOperator = "vpn-pilot-client"

// App owns the client services and the UI running on them.
type App struct {
	services *service.ClientServices
	ui       UI
	closer   func() error
	logger   *logger.Logger
}

// NewApp returns an App running ui over services. closer, if not nil, is
// called once the UI exits.
func NewApp(services *service.ClientServices, ui UI, closer func() error, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNoUI
	}
	if closer == nil {
		closer = func() error { return nil }
	}

	return &App{services: services, ui: ui, closer: closer, logger: logger}, nil
}

// Run blocks until the UI exits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	runErr := a.ui.Run(ctx)

	if err := a.closer(); err != nil {
		a.logger.Err(err).Str("func", "App.run").Msg("error releasing client resources")
	}

	if runErr != nil {
		return fmt.Errorf("client run: %w", runErr)
	}
	return nil
}

// NewClientServices builds the session backend selected by cfg and returns
// it with the function that releases it.
//
// Local mode runs cfg.App.Binary (or the fake CLI) and records history in
// the database at cfg.Storage.DB.DSN. Remote mode mints a bearer token with
// the shared signing key and talks to the daemon at cfg.Adapter.HTTPAddress.
func NewClientServices(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, func() error, error) {
	if cfg.Remote() {
		services, err := newRemoteServices(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return services, func() error { return nil }, nil
	}

	return newLocalServices(ctx, cfg, log)
}

func newLocalServices(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, func() error, error) {
	var executor adapter.CommandExecutor
	if cfg.App.Fake {
		executor = adapter.NewFakeExecutor(false, false)
	} else {
		executor = adapter.NewExecExecutor(cfg.App.Binary, log)
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB.DSN, log)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	return service.NewLocalClientServices(executor, storages.HistoryRepository, log), storages.Close, nil
}

func newRemoteServices(ctx context.Context, cfg *config.ClientConfig, log *logger.Logger) (*service.ClientServices, error) {
	daemonAdapter, err := adapter.NewHTTPDaemonAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create daemon adapter: %w", err)
	}

	auth := service.NewAuthService(cfg.App.TokenSignKey, cfg.App.TokenIssuer, cfg.App.TokenDuration, log)
	token, err := auth.CreateToken(ctx, operatorName())
	if err != nil {
		return nil, fmt.Errorf("create daemon token: %w", err)
	}
	daemonAdapter.SetToken(token.SignedString)

	// the UI reports an unreachable daemon on its own
	if version, err := daemonAdapter.Version(ctx); err != nil {
		log.Warn().Err(err).Str("func", "newRemoteServices").Msg("daemon version check failed")
	} else {
		log.Info().Str("func", "newRemoteServices").Str("daemon_version", version).Msg("daemon reachable")
	}

	return service.NewRemoteClientServices(daemonAdapter, log), nil
}

// Mode describes the backend selected by cfg for the build info page.
func Mode(cfg *config.ClientConfig) string {
	switch {
	case cfg.Remote():
		return "remote " + cfg.Adapter.HTTPAddress
	case cfg.App.Fake:
		return "local (fake CLI)"
	default:
		return "local " + cfg.App.Binary
	}
}

func operatorName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return defaultOperator
}
