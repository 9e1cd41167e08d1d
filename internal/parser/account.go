// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

const (
	notLoggedInMarker = "not logged in"
	emailLinePrefix   = "Email"
	serviceLinePrefix = "VPN Service"
)

var (
	emailPattern      = regexp.MustCompile(`:\s*(\w+?@\w+?\.com)`)
	expirationPattern = regexp.MustCompile(`Active \((.+?)\)`)
)

// ParseAccount extracts [models.AccountInfo] from normalized `nordvpn account`
// output.
//
// The "not logged in" check runs before anything else and returns
// [ErrNotLoggedIn]; the login probe of the session depends on that ordering.
// A line that starts with a known marker but does not match its pattern is a
// [ErrParseFailure].
func ParseAccount(text string) (models.AccountInfo, error) {
	if strings.Contains(text, notLoggedInMarker) {
		return models.AccountInfo{}, ErrNotLoggedIn
	}

	var info models.AccountInfo
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, emailLinePrefix):
			m := emailPattern.FindStringSubmatch(line)
			if m == nil {
				return models.AccountInfo{}, fmt.Errorf("%w: no email in %q", ErrParseFailure, line)
			}
			email := m[1]
			info.Email = &email
		case strings.HasPrefix(line, serviceLinePrefix):
			m := expirationPattern.FindStringSubmatch(line)
			if m == nil {
				return models.AccountInfo{}, fmt.Errorf("%w: no expiration in %q", ErrParseFailure, line)
			}
			expiration := m[1]
			info.Expiration = &expiration
		}
	}

	return info, nil
}
