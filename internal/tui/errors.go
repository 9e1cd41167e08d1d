// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
)

// humanizeError turns session errors into the short sentence shown in the
// error overlay.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return "You are not logged in."
	case errors.Is(err, service.ErrAlreadyLoggedIn):
		return "You are already logged in."
	case errors.Is(err, service.ErrParseFailure):
		return "The VPN client answered in an unexpected format."
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "The daemon rejected the access token."
	case errors.Is(err, adapter.ErrCommandNotStarted):
		return "The VPN client could not be started. Is it installed?"
	case errors.Is(err, service.ErrLocationNotFound):
		return "That location is no longer offered."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The daemon is unreachable."
	}

	return err.Error()
}
