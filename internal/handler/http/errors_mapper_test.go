// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/app"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/validators"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not logged in", fmt.Errorf("status: %w", service.ErrNotLoggedIn), http.StatusPreconditionFailed, app.MsgNotLoggedIn},
		{"already logged in", fmt.Errorf("login: %w", service.ErrAlreadyLoggedIn), http.StatusConflict, app.MsgAlreadyLoggedIn},
		{"parse failure", fmt.Errorf("account: %w", service.ErrParseFailure), http.StatusBadGateway, app.MsgParseFailure},
		{"command failed", fmt.Errorf("%w: connect exited with code 1: boom", service.ErrCommandFailed), http.StatusBadGateway, app.MsgCommandFailed},
		{"command error", &service.CommandError{Command: "connect", ExitCode: 1, Output: "boom"}, http.StatusBadGateway, app.MsgCommandFailed},
		{"not started", fmt.Errorf("status: %w", adapter.ErrCommandNotStarted), http.StatusBadGateway, app.MsgCommandNotStarted},
		{"invalid location", fmt.Errorf("%w: empty", validators.ErrInvalidLocation), http.StatusBadRequest, app.MsgInvalidLocation},
		{"invalid body", fmt.Errorf("%w: eof", ErrInvalidRequestBody), http.StatusBadRequest, app.MsgInvalidDataProvided},
		{"unknown", errors.New("something else"), http.StatusInternalServerError, app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

// An error matching several sentinels takes the first listed mapping.
func TestStatusFromError_FirstMatchWins(t *testing.T) {
	err := errors.Join(service.ErrNotLoggedIn, service.ErrCommandFailed)

	status, _ := statusFromError(err)

	assert.Equal(t, http.StatusPreconditionFailed, status)
}

func TestWriteError_CommandOutputInBody(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantBody string
	}{
		{
			name:     "output appended",
			err:      fmt.Errorf("connect: %w", &service.CommandError{Command: "connect", ExitCode: 1, Output: "The specified server does not exist.\n"}),
			wantBody: app.MsgCommandFailed + ": The specified server does not exist.",
		},
		{
			name:     "no output",
			err:      &service.CommandError{Command: "logout", ExitCode: 1},
			wantBody: app.MsgCommandFailed,
		},
		{
			name:     "other kinds untouched",
			err:      fmt.Errorf("status: %w", service.ErrNotLoggedIn),
			wantBody: app.MsgNotLoggedIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodPost, "/api/connect", nil), "test", tt.err)

			assert.Equal(t, tt.wantBody, strings.TrimSpace(rec.Body.String()))
		})
	}
}
