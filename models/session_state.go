// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is a point-in-time snapshot assembled for presentation layers.
// It is recomputed on every refresh and never cached by the session.
type SessionState struct {
	LoggedIn bool              `json:"logged_in"`
	Account  *AccountInfo      `json:"account,omitempty"`
	Status   *ConnectionStatus `json:"status,omitempty"`
}
