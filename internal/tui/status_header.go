// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

const headerLabelWidth = 34

// renderStatusHeader draws the login box and the connect box side by side.
func renderStatusHeader(state models.SessionState, selected string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		renderLoginBox(state),
		renderConnectBox(state, selected),
	)
}

func renderLoginBox(state models.SessionState) string {
	if !state.LoggedIn {
		return activeBoxStyle.Render(loginLabel(state) + "\n" + helpStyle.Render("i log in"))
	}

	body := fitText(loginLabel(state), headerLabelWidth)
	if state.Account != nil && state.Account.Expiration != nil {
		body += "\n" + helpStyle.Render(fitText(*state.Account.Expiration, headerLabelWidth))
	}
	body += "\n" + helpStyle.Render("o log out")

	return warningBoxStyle.Render(body)
}

func renderConnectBox(state models.SessionState, selected string) string {
	label := fitText(connectLabel(state, selected), headerLabelWidth)

	switch {
	case !state.LoggedIn:
		return mutedBoxStyle.Render(label)

	case isConnected(state):
		body := label
		if state.Status.IP != nil {
			body += "\n" + helpStyle.Render("IP "+*state.Status.IP)
		}
		if state.Status.Uptime != nil {
			body += "\n" + helpStyle.Render("up "+*state.Status.Uptime)
		}
		body += "\n" + helpStyle.Render("d disconnect")
		return activeBoxStyle.Render(body)

	case selected != "":
		return warningBoxStyle.Render(label + "\n" + helpStyle.Render("g connect"))

	default:
		return mutedBoxStyle.Render(label)
	}
}

// loginLabel is the account email once logged in, "Log in" otherwise.
func loginLabel(state models.SessionState) string {
	if !state.LoggedIn {
		return "Log in"
	}
	if state.Account == nil {
		return "-"
	}
	return valueOrDash(state.Account.Email)
}

func connectLabel(state models.SessionState, selected string) string {
	switch {
	case !state.LoggedIn:
		return "Connect"
	case isConnected(state):
		return "Connected: " + valueOrDash(state.Status.Country)
	case selected != "":
		return "Connect to " + selected
	default:
		return "Connect to ..."
	}
}

func isConnected(state models.SessionState) bool {
	return state.Status != nil && state.Status.IsConnected()
}

func connectedCountry(state models.SessionState) string {
	if !isConnected(state) || state.Status.Country == nil {
		return ""
	}
	return *state.Status.Country
}

func connectedCity(state models.SessionState) string {
	if !isConnected(state) || state.Status.City == nil {
		return ""
	}
	return *state.Status.City
}
