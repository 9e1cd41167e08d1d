// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	forceQuit  key.Binding
	login      key.Binding
	logout     key.Binding
	connect    key.Binding
	disconnect key.Binding
	refresh    key.Binding
	history    key.Binding
	buildInfo  key.Binding
	copy       key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	left:       key.NewBinding(key.WithKeys("left", "backspace")),
	right:      key.NewBinding(key.WithKeys("right")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	quit:       key.NewBinding(key.WithKeys("q")),
	forceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	login:      key.NewBinding(key.WithKeys("i")),
	logout:     key.NewBinding(key.WithKeys("o")),
	connect:    key.NewBinding(key.WithKeys("g")),
	disconnect: key.NewBinding(key.WithKeys("d")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	history:    key.NewBinding(key.WithKeys("h")),
	buildInfo:  key.NewBinding(key.WithKeys("v")),
	copy:       key.NewBinding(key.WithKeys("c")),
	yes:        key.NewBinding(key.WithKeys("y", "enter")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}

const mainHelp = "↑/↓ move  enter/→ open  ← back  g connect  d disconnect  i log in  o log out\n" +
	"r refresh  h history  c copy  v build info  q quit"
