// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/parser"
)

// CLI subcommands issued by the session.
const (
	cmdAccount    = "account"
	cmdLogin      = "login"
	cmdLogout     = "logout"
	cmdStatus     = "status"
	cmdCountries  = "countries"
	cmdCities     = "cities"
	cmdConnect    = "connect"
	cmdDisconnect = "disconnect"
)

// session is the local VPNService. It owns nothing but the executor, so
// every answer is re-derived from the CLI.
type session struct {
	executor adapter.CommandExecutor
	logger   *logger.Logger
}

// NewSession returns a VPNService that drives the CLI through executor.
//
// Guarded operations cost two invocations: an `account` probe and the
// command itself. Calls are not serialized; wrap the result with
// NewSerializedSession when it is shared between goroutines.
func NewSession(executor adapter.CommandExecutor, logger *logger.Logger) VPNService {
	return &session{executor: executor, logger: logger}
}

// run executes one subcommand and returns its normalized output together
// with the exit code. Executor and encoding failures are returned as is.
func (s *session) run(ctx context.Context, name string, args ...string) (string, int, error) {
	result, err := s.executor.Execute(ctx, name, args...)
	if err != nil {
		return "", 0, fmt.Errorf("%s: %w", name, err)
	}

	text, err := parser.Normalize(result.Output)
	if err != nil {
		s.logger.Err(err).
			Str("func", "session.run").
			Str("command", name).
			Msg("command output could not be normalized")
		return "", result.ExitCode, fmt.Errorf("%s: %w", name, err)
	}

	return text, result.ExitCode, nil
}

// runChecked is run with a non-zero exit code turned into a *CommandError
// carrying the output text.
func (s *session) runChecked(ctx context.Context, name string, args ...string) (string, error) {
	text, exitCode, err := s.run(ctx, name, args...)
	if err != nil {
		return "", err
	}

	if exitCode != 0 {
		s.logger.Warn().
			Str("func", "session.runChecked").
			Str("command", name).
			Strs("args", args).
			Int("exit_code", exitCode).
			Str("output", text).
			Msg("command exited with non-zero code")
		return text, &CommandError{Command: name, ExitCode: exitCode, Output: text}
	}

	return text, nil
}

func (s *session) requireLogin(ctx context.Context, op string) error {
	if !s.IsLoggedIn(ctx) {
		return fmt.Errorf("%s: %w", op, ErrNotLoggedIn)
	}
	return nil
}

func (s *session) requireLogout(ctx context.Context, op string) error {
	if s.IsLoggedIn(ctx) {
		return fmt.Errorf("%s: %w", op, ErrAlreadyLoggedIn)
	}
	return nil
}
