// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// historyLimit is how many recent locations the history page offers.
const historyLimit = 10

func (m model) renderHistoryPage() string {
	data := "No successful connections recorded yet."
	if len(m.history.items) > 0 {
		data = m.history.view(historyLimit, connectedCountry(m.state))
	}
	return renderPage("RECENT LOCATIONS", data, "enter open in list  esc back")
}
