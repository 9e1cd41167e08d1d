// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound edges of the application.
//
// [CommandExecutor] runs the wrapped VPN CLI: [NewExecExecutor] spawns the
// real binary, [FakeExecutor] replays canned transcripts, and
// [NewInstrumentedExecutor] decorates either one with Prometheus metrics.
//
// [DaemonAdapter] is the REST client for the local daemon. HTTP status codes
// are mapped by mapHTTPError to the sentinel values defined in errors.go so
// that callers can use [errors.Is] (e.g. [ErrPreconditionFailed] for 412,
// [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CommandExecutor runs one subcommand of the wrapped CLI.
//
// A non-zero exit code is a normal result. An error is returned only when
// the process could not be run at all. The context carries request-scoped
// values such as the logger; an in-flight command is never cancelled.
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (models.CommandResult, error)
}

// DaemonAdapter defines communication with the daemon REST API.
type DaemonAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Version returns the daemon build version. It needs no token.
	Version(ctx context.Context) (string, error)

	// Session reports whether the daemon's CLI is logged in.
	Session(ctx context.Context) (bool, error)

	// Account fetches parsed account information.
	Account(ctx context.Context) (models.AccountInfo, error)

	// Status fetches the parsed connection status.
	Status(ctx context.Context) (models.ConnectionStatus, error)

	// Countries fetches the ordered country list.
	Countries(ctx context.Context) ([]string, error)

	// Cities fetches the ordered city list of country.
	Cities(ctx context.Context, country string) ([]string, error)

	// Login, Logout, Connect and Disconnect return the normalized command
	// output.
	Login(ctx context.Context) (string, error)
	Logout(ctx context.Context) (string, error)
	Connect(ctx context.Context, location string) (string, error)
	Disconnect(ctx context.Context) (string, error)

	// History fetches recorded operations, newest first.
	History(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error)
}
