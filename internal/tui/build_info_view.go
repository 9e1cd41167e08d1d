// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, mode string) string {
	if mode == "" {
		mode = "-"
	}
	rows := [][2]string{
		{"Application", "go-vpn-pilot"},
		{"Version", info.BuildVersion()},
		{"Commit", info.BuildCommit()},
		{"Built", info.BuildDate()},
		{"Mode", mode},
	}

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-13s%s", row[0]+":", row[1])
	}

	return renderPage("BUILD INFO", b.String(), "esc back")
}
