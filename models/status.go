// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionState is the VPN tunnel state reported by `nordvpn status`.
type ConnectionState string

const (
	// Connected means the tunnel is up.
	Connected ConnectionState = "Connected"
	// Disconnected covers every other reported state.
	Disconnected ConnectionState = "Disconnected"
)

// ConnectionStatus is the parsed result of `nordvpn status`.
//
// Country, City, IP and Uptime are only set while State is [Connected].
type ConnectionStatus struct {
	State   ConnectionState `json:"status"`
	Country *string         `json:"country"`
	City    *string         `json:"city"`
	IP      *string         `json:"ip"`
	Uptime  *string         `json:"uptime"`
}

// IsConnected reports whether the tunnel is up.
func (s ConnectionStatus) IsConnected() bool {
	return s.State == Connected
}
