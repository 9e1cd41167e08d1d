// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

// Snapshot composes the login state, account and connection status of
// session into one value. A successful CheckAccount counts as logged in,
// the same rule IsLoggedIn applies, so IsLoggedIn is not called. Account
// and status are left nil when logged out or when their query fails.
func Snapshot(ctx context.Context, session VPNService) models.SessionState {
	var state models.SessionState

	account, err := session.CheckAccount(ctx)
	if err != nil {
		return state
	}
	state.LoggedIn = true
	state.Account = &account

	if status, err := session.GetStatus(ctx); err == nil {
		state.Status = &status
	}

	return state
}
