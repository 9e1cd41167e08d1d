// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/mock"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// ── Catalog ──────────────────────────────────────────────────────────────────

func TestCatalog_ResolveCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockVPNService(ctrl)
	catalog := NewCatalog(session)
	ctx := context.Background()

	session.EXPECT().GetCountries(ctx).Return([]string{"Germany", "Japan"}, nil)
	gomock.InOrder(
		session.EXPECT().GetCities(ctx, "Germany").Return([]string{"Berlin", "Frankfurt"}, nil),
		session.EXPECT().GetCities(ctx, "Japan").Return([]string{"Osaka", "Tokyo"}, nil),
	)

	country, err := catalog.ResolveCountry(ctx, "Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "Japan", country)
}

func TestCatalog_ResolveCountry_CountryResolvesToItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockVPNService(ctrl)

	session.EXPECT().GetCountries(gomock.Any()).Return([]string{"Germany", "Japan"}, nil)

	country, err := NewCatalog(session).ResolveCountry(context.Background(), "Japan")
	require.NoError(t, err)
	assert.Equal(t, "Japan", country)
}

func TestCatalog_ResolveCountry_NotFound(t *testing.T) {
	s, _ := newFakeSession(true, false)

	_, err := NewCatalog(s).ResolveCountry(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestCatalog_ResolveCountry_NotLoggedIn(t *testing.T) {
	s, _ := newFakeSession(false, false)

	_, err := NewCatalog(s).ResolveCountry(context.Background(), "Mock_City_1")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── Snapshot ─────────────────────────────────────────────────────────────────

func TestSnapshot_LoggedOut(t *testing.T) {
	s, fake := newFakeSession(false, false)

	state := Snapshot(context.Background(), s)

	assert.False(t, state.LoggedIn)
	assert.Nil(t, state.Account)
	assert.Nil(t, state.Status)
	assert.Equal(t, []string{"account"}, fake.CommandNames())
}

func TestSnapshot_Connected(t *testing.T) {
	s, _ := newFakeSession(true, true)

	state := Snapshot(context.Background(), s)

	assert.True(t, state.LoggedIn)
	require.NotNil(t, state.Account)
	assert.Equal(t, "mock@mail.com", *state.Account.Email)
	require.NotNil(t, state.Status)
	assert.Equal(t, models.Connected, state.Status.State)
}

func TestSnapshot_StatusFailureLeavesStatusNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := mock.NewMockVPNService(ctrl)

	session.EXPECT().CheckAccount(gomock.Any()).Return(models.AccountInfo{}, nil)
	session.EXPECT().GetStatus(gomock.Any()).Return(models.ConnectionStatus{}, ErrCommandFailed)

	state := Snapshot(context.Background(), session)
	assert.True(t, state.LoggedIn)
	assert.Nil(t, state.Status)
}
