// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// VPNServiceWrapper decorates a VPNService with additional behavior.
// Implementations wrap an existing VPNService to add serialization or
// history recording.
type VPNServiceWrapper interface {
	Wrap(VPNService) VPNService
}
