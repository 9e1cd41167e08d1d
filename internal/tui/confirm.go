// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	question string
	confirm  string
}

var (
	confirmLogout = confirmModel{question: "Are you sure you want to log out?", confirm: "log out"}
	confirmQuit   = confirmModel{question: "Are you sure you want to quit?", confirm: "quit"}
)

func (m confirmModel) View() string {
	content := titleStyle.Render(m.question) + "\n\n"
	content += "y " + m.confirm + "    n cancel"
	return overlayBoxStyle.Render(content)
}
