// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal UI of the client.
//
// The screen is a single bubbletea model: a status header with the login
// and connect boxes, a country list that opens into city lists, a recent
// locations page and a build info page. Every service call runs as a
// tea.Cmd and at most one is in flight at a time.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

var ErrNoServices = errors.New("client services are not configured")

// TUI runs the terminal UI over a set of client services.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	mode      string
	logger    *logger.Logger
}

// New returns a TUI. mode is shown on the build info page ("local" or the
// daemon address).
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, mode string, log *logger.Logger) (*TUI, error) {
	if services == nil || services.VPNService == nil || services.Catalog == nil {
		return nil, ErrNoServices
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		mode:      mode,
		logger:    log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	m := newModel(ctx, t.services, t.buildInfo, t.mode)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		t.logger.Err(err).Str("func", "TUI.Run").Msg("terminal UI stopped with error")
		return fmt.Errorf("run terminal UI: %w", err)
	}

	return nil
}
