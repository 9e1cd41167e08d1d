// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AccountInfo is the parsed result of `nordvpn account`.
//
// Both fields are optional: the wrapped tool may omit either line, and the
// parser leaves a field nil rather than inventing a value.
type AccountInfo struct {
	// Email is the address shown on the "Email Address:" line.
	Email *string `json:"email"`

	// Expiration is the text inside "Active (...)" on the "VPN Service:" line,
	// e.g. "Expires on Jul 15th, 2025".
	Expiration *string `json:"expiration"`
}
