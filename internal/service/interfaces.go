// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the session layer on top of the wrapped VPN
// CLI.
//
// [NewSession] is the core: every operation probes the login state when it
// needs to, runs one subcommand through an adapter.CommandExecutor and
// turns the normalized output into a typed result or one of the sentinels
// in errors.go. The remaining constructors decorate a [VPNService]
// (serialization, history recording), replace it with a REST client
// ([NewRemoteSession]) or build supporting services around it.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VPNService is the session contract shared by the TUI, the REST handlers
// and the status watch job. Implementations hold no cached state: every
// call reflects the CLI as it is at that moment.
type VPNService interface {
	// IsLoggedIn reports whether the account query succeeds. It never
	// returns an error; any failure reads as logged out.
	IsLoggedIn(ctx context.Context) bool

	// Login starts the CLI login flow and returns its normalized output,
	// which usually carries the browser URL. Requires a logged-out CLI.
	Login(ctx context.Context) (string, error)

	// Logout ends the CLI session. Requires a logged-in CLI.
	Logout(ctx context.Context) (string, error)

	// CheckAccount returns the parsed account details. It does not probe
	// the login state first; a logged-out CLI yields ErrNotLoggedIn.
	CheckAccount(ctx context.Context) (models.AccountInfo, error)

	// GetStatus returns the parsed connection status.
	GetStatus(ctx context.Context) (models.ConnectionStatus, error)

	// GetCountries returns the country names in CLI order.
	GetCountries(ctx context.Context) ([]string, error)

	// GetCities returns the city names of country in CLI order.
	GetCities(ctx context.Context, country string) ([]string, error)

	// Connect connects to location, a country or a city name. An empty
	// location lets the CLI pick the recommended server.
	Connect(ctx context.Context, location string) (string, error)

	// Disconnect drops the VPN connection. Disconnecting while already
	// disconnected succeeds.
	Disconnect(ctx context.Context) (string, error)
}

// HistoryReader reads recorded session operations.
type HistoryReader interface {
	// List returns entries newest first, narrowed by filter.
	List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error)

	// RecentLocations returns up to limit distinct locations of successful
	// connects, most recent first.
	RecentLocations(ctx context.Context, limit int) ([]string, error)
}

// HistoryService reads and writes the operation history.
type HistoryService interface {
	HistoryReader

	// Record assigns an ID and timestamp to entry when missing and stores it.
	Record(ctx context.Context, entry models.HistoryEntry) error
}

// StatusWatchJob polls the connection status in the background.
type StatusWatchJob interface {
	// Start launches the polling goroutine, replacing a running one.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit. Safe to call
	// more than once.
	Stop()
}

// AuthService issues and verifies the daemon's bearer tokens.
type AuthService interface {
	CreateToken(ctx context.Context, operator string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
