// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
)

// locationList is a cursor over a list of names, rendered in a window of at
// most height rows that follows the cursor.
type locationList struct {
	items []string
	idx   int
}

func (l *locationList) set(items []string) {
	l.items = items
	l.idx = 0
}

func (l *locationList) moveUp() {
	if l.idx > 0 {
		l.idx--
	}
}

func (l *locationList) moveDown() {
	if l.idx < len(l.items)-1 {
		l.idx++
	}
}

// focus moves the cursor to name. It reports whether name is listed.
func (l *locationList) focus(name string) bool {
	for i, item := range l.items {
		if item == name {
			l.idx = i
			return true
		}
	}
	return false
}

func (l locationList) current() (string, bool) {
	if len(l.items) == 0 || l.idx < 0 || l.idx >= len(l.items) {
		return "", false
	}
	return l.items[l.idx], true
}

// view renders the visible window. marked is decorated as the connected
// location.
func (l locationList) view(height int, marked string) string {
	if len(l.items) == 0 {
		return helpStyle.Render("(empty)")
	}
	if height <= 0 {
		height = len(l.items)
	}

	start := 0
	if l.idx >= height {
		start = l.idx - height + 1
	}
	end := min(start+height, len(l.items))

	var b strings.Builder
	for i := start; i < end; i++ {
		item := l.items[i]
		if l.items[i] == marked {
			item = connectedStyle.Render(item + " ●")
		}

		if i == l.idx {
			b.WriteString(cursorStyle.Render("> ") + item)
		} else {
			b.WriteString("  " + item)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}

	if len(l.items) > height {
		b.WriteString("\n" + helpStyle.Render(fmt.Sprintf("%d/%d", l.idx+1, len(l.items))))
	}

	return b.String()
}
