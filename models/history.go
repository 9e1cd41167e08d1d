// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Operation names stored in [HistoryEntry.Operation].
const (
	OperationLogin      = "login"
	OperationLogout     = "logout"
	OperationConnect    = "connect"
	OperationDisconnect = "disconnect"
)

// Outcome values stored in [HistoryEntry.Outcome].
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// HistoryEntry records one state-changing session operation.
type HistoryEntry struct {
	// ID is a time-ordered UUIDv7 string.
	ID string `json:"id"`

	// Operation is one of the Operation* constants.
	Operation string `json:"operation"`

	// Argument is the location passed to connect; empty otherwise.
	Argument string `json:"argument"`

	// Outcome is OutcomeOK or OutcomeError.
	Outcome string `json:"outcome"`

	// Message is the normalized command output on success or the error text
	// on failure.
	Message string `json:"message"`

	CreatedAt time.Time `json:"created_at"`
}

// HistoryFilter narrows a history listing. Zero values mean "no filter";
// a zero Limit falls back to the repository default.
type HistoryFilter struct {
	Operation string
	Limit     uint64
}
