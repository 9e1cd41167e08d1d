// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// errorOverlayModel is the modal shown for a failed service call. Any
// key other than enter or esc is swallowed while it is open.
type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	return overlayBoxStyle.Render(
		errorStyle.Render("Something went wrong") + "\n\n" +
			m.message + "\n\n" +
			helpStyle.Render("enter/esc dismiss"),
	)
}
