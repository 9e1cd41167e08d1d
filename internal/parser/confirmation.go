// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"regexp"
	"strings"
)

var loginURLPattern = regexp.MustCompile(`Continue in the browser:\s*(https://\S+)`)

// ConnectConfirmed reports whether connect output contains the tool's
// success sentence.
func ConnectConfirmed(text string) bool {
	return strings.Contains(text, "You are connected")
}

// NotConnected reports whether disconnect output says there was nothing to
// disconnect from.
func NotConnected(text string) bool {
	return strings.Contains(text, "not connected")
}

// LoginURL returns the browser URL printed by `nordvpn login`, if any.
func LoginURL(text string) (string, bool) {
	m := loginURLPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
