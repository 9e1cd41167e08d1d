// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectRequest is the body of POST /api/connect. An empty Location asks
// the wrapped tool for its recommended server.
type ConnectRequest struct {
	Location string `json:"location"`
}

// OutputResponse carries the normalized text of a state-changing command.
type OutputResponse struct {
	Output string `json:"output"`
}

// LoggedInResponse is the body of GET /api/session.
type LoggedInResponse struct {
	LoggedIn bool `json:"logged_in"`
}

// ListResponse wraps an ordered list of names (countries or cities).
type ListResponse struct {
	Items []string `json:"items"`
}

// HistoryResponse wraps a page of history entries.
type HistoryResponse struct {
	Items []HistoryEntry `json:"items"`
}
