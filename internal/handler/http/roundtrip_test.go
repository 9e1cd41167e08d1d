// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/mock"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// newRemoteSession serves env over a real listener and returns a session
// that reaches it through the resty daemon adapter.
func newRemoteSession(t *testing.T, env *testEnv, token string) (service.VPNService, adapter.DaemonAdapter) {
	t.Helper()

	srv := httptest.NewServer(env.router)
	t.Cleanup(srv.Close)

	daemon, err := adapter.NewHTTPDaemonAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	daemon.SetToken(token)

	return service.NewRemoteSession(daemon, logger.Nop()), daemon
}

func TestRoundTrip_FullSession(t *testing.T) {
	env := newFakeEnv(t, false, false)
	remote, _ := newRemoteSession(t, env, env.token)
	ctx := context.Background()

	assert.False(t, remote.IsLoggedIn(ctx))

	_, err := remote.GetStatus(ctx)
	require.ErrorIs(t, err, service.ErrNotLoggedIn)

	output, err := remote.Login(ctx)
	require.NoError(t, err)
	assert.Contains(t, output, adapter.FakeLoginURL)

	_, err = remote.Login(ctx)
	require.ErrorIs(t, err, service.ErrAlreadyLoggedIn)

	info, err := remote.CheckAccount(ctx)
	require.NoError(t, err)
	require.NotNil(t, info.Email)
	assert.Equal(t, "mock@mail.com", *info.Email)

	countries, err := remote.GetCountries(ctx)
	require.NoError(t, err)
	assert.Len(t, countries, 4)

	cities, err := remote.GetCities(ctx, "Mock_Country_1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mock_City_1", "Mock_City_2"}, cities)

	_, err = remote.Connect(ctx, "Mock_Country_2")
	require.NoError(t, err)

	status, err := remote.GetStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.IsConnected())
	require.NotNil(t, status.Country)
	assert.Equal(t, "Mock_Country_2", *status.Country)

	_, err = remote.Disconnect(ctx)
	require.NoError(t, err)

	_, err = remote.Logout(ctx)
	require.NoError(t, err)
	assert.False(t, remote.IsLoggedIn(ctx))
}

func TestRoundTrip_ParseFailureKeepsItsKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mock.NewMockCommandExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), "account").
		Return(models.CommandResult{Command: "account", Output: []byte("Email Address: nobody\n")}, nil)
	env := newTestEnv(t, executor)
	remote, _ := newRemoteSession(t, env, env.token)

	_, err := remote.CheckAccount(context.Background())

	assert.ErrorIs(t, err, service.ErrParseFailure)
}

func TestRoundTrip_CommandFailureKeepsOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mock.NewMockCommandExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), "account").
		Return(models.CommandResult{Command: "account", Output: []byte(adapter.FakeAccountLoggedIn)}, nil)
	executor.EXPECT().Execute(gomock.Any(), "connect", "Atlantis").
		Return(models.CommandResult{Command: "connect", Output: []byte("The specified server does not exist.\n"), ExitCode: 1}, nil)
	env := newTestEnv(t, executor)
	remote, _ := newRemoteSession(t, env, env.token)

	output, err := remote.Connect(context.Background(), "Atlantis")

	require.ErrorIs(t, err, service.ErrCommandFailed)
	assert.Contains(t, err.Error(), "The specified server does not exist.")
	assert.Equal(t, "The specified server does not exist.", output)
}

func TestRoundTrip_CommandNotStarted(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mock.NewMockCommandExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), "account").
		Return(models.CommandResult{}, adapter.ErrCommandNotStarted)
	env := newTestEnv(t, executor)
	remote, _ := newRemoteSession(t, env, env.token)

	_, err := remote.CheckAccount(context.Background())

	assert.ErrorIs(t, err, adapter.ErrCommandNotStarted)
}

func TestRoundTrip_InvalidToken(t *testing.T) {
	env := newFakeEnv(t, true, false)
	remote, _ := newRemoteSession(t, env, "not-a-token")

	_, err := remote.GetCountries(context.Background())

	assert.ErrorIs(t, err, service.ErrTokenIsExpiredOrInvalid)
	assert.Empty(t, env.fake.Calls())
}

func TestRoundTrip_History(t *testing.T) {
	env := newFakeEnv(t, true, false)
	_, daemon := newRemoteSession(t, env, env.token)

	entries := []models.HistoryEntry{
		{ID: "3", Operation: models.OperationConnect, Argument: "Germany", Outcome: models.OutcomeOK},
		{ID: "2", Operation: models.OperationConnect, Argument: "France", Outcome: models.OutcomeError},
		{ID: "1", Operation: models.OperationConnect, Argument: "Germany", Outcome: models.OutcomeOK},
	}
	env.history.EXPECT().List(gomock.Any(), gomock.Any()).Return(entries, nil)

	recent, err := service.NewRemoteHistoryReader(daemon).RecentLocations(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, []string{"Germany"}, recent)
}
