// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

var keyValuePattern = regexp.MustCompile(`(\w+?):\s*([\w\s.]+)$`)

// ParseStatus extracts [models.ConnectionStatus] from normalized
// `nordvpn status` output.
//
// Each line is matched against a generic "key: value" pattern and only the
// keys Status, Country, City, IP and Uptime are kept. Unmatched lines and
// unknown keys are dropped without error.
func ParseStatus(text string) models.ConnectionStatus {
	fields := make(map[string]string, 5)
	for _, line := range strings.Split(text, "\n") {
		m := keyValuePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch key := m[1]; key {
		case "Status", "Country", "City", "IP", "Uptime":
			fields[key] = strings.TrimSpace(m[2])
		}
	}

	status := models.ConnectionStatus{State: models.Disconnected}
	if fields["Status"] != string(models.Connected) {
		return status
	}

	status.State = models.Connected
	status.Country = optional(fields, "Country")
	status.City = optional(fields, "City")
	status.IP = optional(fields, "IP")
	status.Uptime = optional(fields, "Uptime")

	return status
}

func optional(fields map[string]string, key string) *string {
	v, ok := fields[key]
	if !ok {
		return nil
	}
	return &v
}
