// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

type sessionLoadedMsg struct {
	state models.SessionState
}

type countriesLoadedMsg struct {
	items []string
	err   error
}

type citiesLoadedMsg struct {
	country string
	items   []string
	err     error
}

// opDoneMsg reports a state-changing operation (login, logout, connect,
// disconnect).
type opDoneMsg struct {
	op     string
	output string
	err    error
}

type historyLoadedMsg struct {
	items []string
	err   error
}

type locationResolvedMsg struct {
	location string
	country  string
	err      error
}

type copiedMsg struct {
	what string
	err  error
}

type tickMsg time.Time

type clearStatusMsg struct{}
