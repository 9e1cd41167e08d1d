// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

type execExecutor struct {
	binary string
	logger *logger.Logger
}

// NewExecExecutor returns a [CommandExecutor] that spawns binary with the
// subcommand name as its first argument and captures stdout.
func NewExecExecutor(binary string, logger *logger.Logger) CommandExecutor {
	return &execExecutor{binary: binary, logger: logger}
}

// Execute implements [CommandExecutor]. The process is started without ctx,
// so an in-flight command always runs to completion.
func (e *execExecutor) Execute(ctx context.Context, name string, args ...string) (models.CommandResult, error) {
	argv := append([]string{name}, args...)
	cmd := exec.Command(e.binary, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()

	result := models.CommandResult{
		Command:  name,
		Args:     args,
		Output:   stdout.Bytes(),
		Duration: time.Since(start),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			e.logger.Err(err).
				Str("func", "execExecutor.Execute").
				Str("binary", e.binary).
				Str("command", name).
				Msg("command could not be started")
			return result, fmt.Errorf("%w: %s %s: %w", ErrCommandNotStarted, e.binary, name, err)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	event := e.logger.Debug().
		Str("func", "execExecutor.Execute").
		Str("command", name).
		Strs("args", args).
		Int("exit_code", result.ExitCode).
		Dur("duration", result.Duration)
	if stderr.Len() > 0 {
		event = event.Str("stderr", strings.TrimSpace(stderr.String()))
	}
	event.Msg("command executed")

	return result, nil
}
