// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

var errHistoryUnavailable = errors.New("history is not available")

// statusTTL is how long a transient status line stays on screen.
const statusTTL = 2 * time.Second

func (m model) cmdRefresh() tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		return sessionLoadedMsg{state: service.Snapshot(ctx, session)}
	}
}

func (m model) cmdLoadCountries() tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		items, err := session.GetCountries(ctx)
		return countriesLoadedMsg{items: items, err: err}
	}
}

func (m model) cmdLoadCities(country string) tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		items, err := session.GetCities(ctx, country)
		return citiesLoadedMsg{country: country, items: items, err: err}
	}
}

func (m model) cmdLogin() tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		out, err := session.Login(ctx)
		return opDoneMsg{op: models.OperationLogin, output: out, err: err}
	}
}

// cmdLogout drops an active connection before ending the session.
func (m model) cmdLogout() tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	connected := isConnected(m.state)
	return func() tea.Msg {
		if connected {
			if _, err := session.Disconnect(ctx); err != nil {
				return opDoneMsg{op: models.OperationLogout, err: err}
			}
		}
		out, err := session.Logout(ctx)
		return opDoneMsg{op: models.OperationLogout, output: out, err: err}
	}
}

func (m model) cmdConnect(location string) tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		out, err := session.Connect(ctx, location)
		return opDoneMsg{op: models.OperationConnect, output: out, err: err}
	}
}

func (m model) cmdDisconnect() tea.Cmd {
	ctx, session := m.ctx, m.services.VPNService
	return func() tea.Msg {
		out, err := session.Disconnect(ctx)
		return opDoneMsg{op: models.OperationDisconnect, output: out, err: err}
	}
}

func (m model) cmdLoadHistory() tea.Cmd {
	ctx, history := m.ctx, m.services.History
	return func() tea.Msg {
		if history == nil {
			return historyLoadedMsg{err: errHistoryUnavailable}
		}
		items, err := history.RecentLocations(ctx, historyLimit)
		return historyLoadedMsg{items: items, err: err}
	}
}

func (m model) cmdResolve(location string) tea.Cmd {
	ctx, catalog := m.ctx, m.services.Catalog
	return func() tea.Msg {
		country, err := catalog.ResolveCountry(ctx, location)
		return locationResolvedMsg{location: location, country: country, err: err}
	}
}

func (m model) cmdCopy(text, what string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{what: what, err: copyText(text)}
	}
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
