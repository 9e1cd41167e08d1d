// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/parser"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

func (s *session) IsLoggedIn(ctx context.Context) bool {
	_, err := s.CheckAccount(ctx)
	if err != nil && !errors.Is(err, ErrNotLoggedIn) {
		s.logger.Debug().Err(err).
			Str("func", "session.IsLoggedIn").
			Msg("account probe failed, treating as logged out")
	}
	return err == nil
}

func (s *session) Login(ctx context.Context) (string, error) {
	if err := s.requireLogout(ctx, cmdLogin); err != nil {
		return "", err
	}

	text, err := s.runChecked(ctx, cmdLogin)
	if err != nil {
		return text, err
	}

	event := s.logger.Info().Str("func", "session.Login")
	if url, ok := parser.LoginURL(text); ok {
		event = event.Str("login_url", url)
	}
	event.Msg("login started")

	return text, nil
}

func (s *session) Logout(ctx context.Context) (string, error) {
	if err := s.requireLogin(ctx, cmdLogout); err != nil {
		return "", err
	}

	text, err := s.runChecked(ctx, cmdLogout)
	if err != nil {
		return text, err
	}

	s.logger.Info().Str("func", "session.Logout").Msg("logged out")
	return text, nil
}

// CheckAccount ignores the exit code: a logged-out CLI exits non-zero and
// the parser recognizes that case from the text.
func (s *session) CheckAccount(ctx context.Context) (models.AccountInfo, error) {
	text, _, err := s.run(ctx, cmdAccount)
	if err != nil {
		return models.AccountInfo{}, err
	}

	info, err := parser.ParseAccount(text)
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("%s: %w", cmdAccount, err)
	}

	return info, nil
}

func (s *session) GetStatus(ctx context.Context) (models.ConnectionStatus, error) {
	if err := s.requireLogin(ctx, cmdStatus); err != nil {
		return models.ConnectionStatus{}, err
	}

	text, err := s.runChecked(ctx, cmdStatus)
	if err != nil {
		return models.ConnectionStatus{}, err
	}

	return parser.ParseStatus(text), nil
}

func (s *session) GetCountries(ctx context.Context) ([]string, error) {
	if err := s.requireLogin(ctx, cmdCountries); err != nil {
		return nil, err
	}

	text, err := s.runChecked(ctx, cmdCountries)
	if err != nil {
		return nil, err
	}

	return parser.ParseCountries(text), nil
}

func (s *session) GetCities(ctx context.Context, country string) ([]string, error) {
	if err := s.requireLogin(ctx, cmdCities); err != nil {
		return nil, err
	}

	text, err := s.runChecked(ctx, cmdCities, country)
	if err != nil {
		return nil, err
	}

	return parser.ParseCities(text), nil
}

func (s *session) Connect(ctx context.Context, location string) (string, error) {
	if err := s.requireLogin(ctx, cmdConnect); err != nil {
		return "", err
	}

	var args []string
	if location != "" {
		args = append(args, location)
	}

	text, err := s.runChecked(ctx, cmdConnect, args...)
	if err != nil {
		return text, err
	}

	s.logger.Info().
		Str("func", "session.Connect").
		Str("location", location).
		Bool("confirmed", parser.ConnectConfirmed(text)).
		Msg("connect finished")

	return text, nil
}

func (s *session) Disconnect(ctx context.Context) (string, error) {
	if err := s.requireLogin(ctx, cmdDisconnect); err != nil {
		return "", err
	}

	text, err := s.runChecked(ctx, cmdDisconnect)
	if err != nil {
		return text, err
	}

	s.logger.Info().
		Str("func", "session.Disconnect").
		Bool("was_connected", !parser.NotConnected(text)).
		Msg("disconnect finished")

	return text, nil
}
