// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// remoteSession is a VPNService backed by the daemon REST API. Guards run
// on the daemon, so each call here is a single request.
type remoteSession struct {
	adapter adapter.DaemonAdapter
	logger  *logger.Logger
}

// NewRemoteSession returns a VPNService that forwards every operation to
// the daemon through daemonAdapter. The adapter must already carry a token.
func NewRemoteSession(daemonAdapter adapter.DaemonAdapter, logger *logger.Logger) VPNService {
	return &remoteSession{adapter: daemonAdapter, logger: logger}
}

func (r *remoteSession) IsLoggedIn(ctx context.Context) bool {
	loggedIn, err := r.adapter.Session(ctx)
	if err != nil {
		r.logger.Debug().Err(err).
			Str("func", "remoteSession.IsLoggedIn").
			Msg("session request failed, treating as logged out")
		return false
	}
	return loggedIn
}

func (r *remoteSession) Login(ctx context.Context) (string, error) {
	text, err := r.adapter.Login(ctx)
	if err != nil {
		return r.failWithOutput("remoteSession.Login", cmdLogin, err)
	}
	return text, nil
}

func (r *remoteSession) Logout(ctx context.Context) (string, error) {
	text, err := r.adapter.Logout(ctx)
	if err != nil {
		return r.failWithOutput("remoteSession.Logout", cmdLogout, err)
	}
	return text, nil
}

func (r *remoteSession) CheckAccount(ctx context.Context) (models.AccountInfo, error) {
	info, err := r.adapter.Account(ctx)
	if err != nil {
		return models.AccountInfo{}, r.fail("remoteSession.CheckAccount", cmdAccount, err)
	}
	return info, nil
}

func (r *remoteSession) GetStatus(ctx context.Context) (models.ConnectionStatus, error) {
	status, err := r.adapter.Status(ctx)
	if err != nil {
		return models.ConnectionStatus{}, r.fail("remoteSession.GetStatus", cmdStatus, err)
	}
	return status, nil
}

func (r *remoteSession) GetCountries(ctx context.Context) ([]string, error) {
	countries, err := r.adapter.Countries(ctx)
	if err != nil {
		return nil, r.fail("remoteSession.GetCountries", cmdCountries, err)
	}
	return countries, nil
}

func (r *remoteSession) GetCities(ctx context.Context, country string) ([]string, error) {
	cities, err := r.adapter.Cities(ctx, country)
	if err != nil {
		return nil, r.fail("remoteSession.GetCities", cmdCities, err)
	}
	return cities, nil
}

func (r *remoteSession) Connect(ctx context.Context, location string) (string, error) {
	text, err := r.adapter.Connect(ctx, location)
	if err != nil {
		return r.failWithOutput("remoteSession.Connect", cmdConnect, err)
	}
	return text, nil
}

func (r *remoteSession) Disconnect(ctx context.Context) (string, error) {
	text, err := r.adapter.Disconnect(ctx)
	if err != nil {
		return r.failWithOutput("remoteSession.Disconnect", cmdDisconnect, err)
	}
	return text, nil
}

// failWithOutput is fail for the text operations: like the local session it
// also returns the CLI output of a failed command.
func (r *remoteSession) failWithOutput(fn, op string, err error) (string, error) {
	err = r.fail(fn, op, err)
	return FailureOutput(err), err
}

func (r *remoteSession) fail(fn, op string, err error) error {
	mapped := mapAdapterError(err)
	r.logger.Err(err).Str("func", fn).Msg("daemon request failed")
	return fmt.Errorf("%s: %w", op, mapped)
}
