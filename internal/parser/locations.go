// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"regexp"
	"strings"
)

var (
	tabRuns   = regexp.MustCompile(`\t+`)
	wordToken = regexp.MustCompile(`\w+`)
)

// ParseCountries extracts country names from normalized `nordvpn countries`
// output.
func ParseCountries(text string) []string {
	return parseNameTable(text)
}

// ParseCities extracts city names from normalized `nordvpn cities <country>`
// output.
func ParseCities(text string) []string {
	return parseNameTable(text)
}

// parseNameTable reads the tool's tab-separated multi-column table. Newlines
// become tabs, runs of tabs collapse into one separator, and the leading word
// token of each segment is kept in reading order. Segments without a word
// token (spinner leftovers, blank cells) are dropped.
func parseNameTable(text string) []string {
	flat := strings.ReplaceAll(text, "\n", "\t")

	names := make([]string, 0)
	for _, segment := range tabRuns.Split(flat, -1) {
		if token := wordToken.FindString(segment); token != "" {
			names = append(names, token)
		}
	}
	return names
}
