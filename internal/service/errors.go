// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/internal/parser"
)

var (
	// ErrNotLoggedIn and ErrParseFailure are the parser's own values so
	// that errors.Is matches regardless of which layer produced them.
	ErrNotLoggedIn  = parser.ErrNotLoggedIn
	ErrParseFailure = parser.ErrParseFailure

	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrCommandFailed   = errors.New("command failed")

	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// CommandError is an [ErrCommandFailed] that keeps the CLI's normalized
// output. Command and ExitCode are empty when the failure was reported by
// the daemon, which only forwards the output.
type CommandError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *CommandError) Error() string {
	output := strings.TrimSpace(e.Output)
	if e.Command == "" {
		if output == "" {
			return ErrCommandFailed.Error()
		}
		return fmt.Sprintf("%s: %s", ErrCommandFailed, output)
	}
	return fmt.Sprintf("%s: %s exited with code %d: %s", ErrCommandFailed, e.Command, e.ExitCode, output)
}

func (e *CommandError) Unwrap() error {
	return ErrCommandFailed
}

// FailureOutput returns the trimmed CLI output carried by err, or "" when
// err holds no [CommandError].
func FailureOutput(err error) string {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return strings.TrimSpace(cmdErr.Output)
	}
	return ""
}
