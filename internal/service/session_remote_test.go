// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/app"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/mock"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

func httpErr(sentinel error, body string) error {
	return fmt.Errorf("%w: %s", sentinel, body)
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	other := errors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"412 not logged in", httpErr(adapter.ErrPreconditionFailed, app.MsgNotLoggedIn), ErrNotLoggedIn},
		{"409 already logged in", httpErr(adapter.ErrConflict, app.MsgAlreadyLoggedIn), ErrAlreadyLoggedIn},
		{"502 parse failure", httpErr(adapter.ErrBadGateway, app.MsgParseFailure), ErrParseFailure},
		{"502 command failed", httpErr(adapter.ErrBadGateway, app.MsgCommandFailed), ErrCommandFailed},
		{"502 command failed with output", httpErr(adapter.ErrBadGateway, app.MsgCommandFailed+": no such server"), ErrCommandFailed},
		{"502 command not started", httpErr(adapter.ErrBadGateway, app.MsgCommandNotStarted), adapter.ErrCommandNotStarted},
		{"401 invalid token", httpErr(adapter.ErrUnauthorized, app.MsgTokenIsExpiredOrInvalid), ErrTokenIsExpiredOrInvalid},
		{"401 no header", httpErr(adapter.ErrUnauthorized, app.MsgNoAuthorizationHeader), ErrTokenIsExpiredOrInvalid},
		{"wrapped by the adapter", fmt.Errorf("status request: %w", httpErr(adapter.ErrBadGateway, app.MsgCommandFailed)), ErrCommandFailed},
		{"502 unknown body passes through", httpErr(adapter.ErrBadGateway, "upstream"), adapter.ErrBadGateway},
		{"transport error passes through", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_KeepsCommandOutput(t *testing.T) {
	err := mapAdapterError(fmt.Errorf("connect request: %w",
		httpErr(adapter.ErrBadGateway, app.MsgCommandFailed+": The specified server does not exist.")))

	require.ErrorIs(t, err, ErrCommandFailed)
	assert.Equal(t, "The specified server does not exist.", FailureOutput(err))
	assert.Equal(t, "command failed: The specified server does not exist.", err.Error())

	bare := mapAdapterError(httpErr(adapter.ErrBadGateway, app.MsgCommandFailed))
	assert.Empty(t, FailureOutput(bare))
	assert.Equal(t, "command failed", bare.Error())
}

func TestExtractBody(t *testing.T) {
	assert.Equal(t, "not logged in",
		extractBody(httpErr(adapter.ErrPreconditionFailed, "not logged in"), adapter.ErrPreconditionFailed))
	assert.Equal(t, "a: b",
		extractBody(httpErr(adapter.ErrBadGateway, "a: b"), adapter.ErrBadGateway))
	assert.Equal(t, app.MsgParseFailure,
		extractBody(fmt.Errorf("account request: %w", httpErr(adapter.ErrBadGateway, app.MsgParseFailure)), adapter.ErrBadGateway))
	assert.Equal(t, "plain", extractBody(errors.New("plain"), adapter.ErrBadGateway))
}

// ── remoteSession ────────────────────────────────────────────────────────────

func TestRemoteSession_IsLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	daemon := mock.NewMockDaemonAdapter(ctrl)
	s := NewRemoteSession(daemon, logger.Nop())
	ctx := context.Background()

	daemon.EXPECT().Session(ctx).Return(true, nil)
	assert.True(t, s.IsLoggedIn(ctx))

	daemon.EXPECT().Session(ctx).Return(false, errors.New("connection refused"))
	assert.False(t, s.IsLoggedIn(ctx))
}

func TestRemoteSession_MapsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	daemon := mock.NewMockDaemonAdapter(ctrl)
	s := NewRemoteSession(daemon, logger.Nop())
	ctx := context.Background()

	daemon.EXPECT().Connect(ctx, "Japan").Return("", httpErr(adapter.ErrPreconditionFailed, app.MsgNotLoggedIn))
	_, err := s.Connect(ctx, "Japan")
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	daemon.EXPECT().Login(ctx).Return("", httpErr(adapter.ErrConflict, app.MsgAlreadyLoggedIn))
	_, err = s.Login(ctx)
	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)

	daemon.EXPECT().Account(ctx).Return(models.AccountInfo{}, httpErr(adapter.ErrBadGateway, app.MsgParseFailure))
	_, err = s.CheckAccount(ctx)
	assert.ErrorIs(t, err, ErrParseFailure)

	daemon.EXPECT().Disconnect(ctx).Return("", httpErr(adapter.ErrBadGateway, app.MsgCommandFailed))
	_, err = s.Disconnect(ctx)
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestRemoteSession_FailedCommandReturnsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	daemon := mock.NewMockDaemonAdapter(ctrl)
	s := NewRemoteSession(daemon, logger.Nop())
	ctx := context.Background()

	daemon.EXPECT().Connect(ctx, "Atlantis").
		Return("", httpErr(adapter.ErrBadGateway, app.MsgCommandFailed+": The specified server does not exist."))

	text, err := s.Connect(ctx, "Atlantis")

	require.ErrorIs(t, err, ErrCommandFailed)
	assert.Equal(t, "The specified server does not exist.", text)
	assert.Equal(t, "connect: command failed: The specified server does not exist.", err.Error())
}

func TestRemoteSession_PassesValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	daemon := mock.NewMockDaemonAdapter(ctrl)
	s := NewRemoteSession(daemon, logger.Nop())
	ctx := context.Background()

	country := "Japan"
	daemon.EXPECT().Status(ctx).Return(models.ConnectionStatus{State: models.Connected, Country: &country}, nil)
	daemon.EXPECT().Countries(ctx).Return([]string{"Japan", "Germany"}, nil)
	daemon.EXPECT().Cities(ctx, "Japan").Return([]string{"Tokyo"}, nil)
	daemon.EXPECT().Logout(ctx).Return("You are logged out.", nil)

	status, err := s.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Japan", *status.Country)

	countries, err := s.GetCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Japan", "Germany"}, countries)

	cities, err := s.GetCities(ctx, "Japan")
	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo"}, cities)

	text, err := s.Logout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "You are logged out.", text)
}
