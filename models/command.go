// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CommandResult is the raw outcome of one invocation of the wrapped CLI.
//
// A non-zero ExitCode is a normal, inspectable result and is never reported
// as an error by executors.
type CommandResult struct {
	// Command is the subcommand name, e.g. "status" or "connect".
	Command string

	// Args are the positional arguments passed after Command.
	Args []string

	// Output holds the raw stdout bytes, spinner artifacts included.
	Output []byte

	// ExitCode is the process exit status.
	ExitCode int

	// Duration is the wall-clock time the process took.
	Duration time.Duration
}

// Succeeded reports whether the process exited with status 0.
func (r CommandResult) Succeeded() bool {
	return r.ExitCode == 0
}
