// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

const pageWidth = 54

// renderPage frames a full-screen page: the title, the body between two
// rules and the page's key hints.
func renderPage(title, body, hints string) string {
	rule := helpStyle.Render(strings.Repeat("─", pageWidth))
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	parts := []string{titleStyle.Render(title), rule, indent(body), rule}
	if hints != "" {
		parts = append(parts, helpStyle.Render(hints))
	}
	return strings.Join(parts, "\n")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}

func valueOrDash(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}

// fitText cuts v to max bytes, marking the cut with "...".
func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
