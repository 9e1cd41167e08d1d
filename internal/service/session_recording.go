// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// recordingSession stores a history entry after each state-changing call.
// Read-only calls pass straight through.
type recordingSession struct {
	VPNService

	history HistoryService
	logger  *logger.Logger
}

// NewRecordingSession returns a wrapper that records login, logout,
// connect and disconnect in history. Storage failures are logged and never
// change the wrapped call's result.
func NewRecordingSession(history HistoryService, logger *logger.Logger) VPNServiceWrapper {
	return &recordingSession{history: history, logger: logger}
}

func (r *recordingSession) Wrap(inner VPNService) VPNService {
	return &recordingSession{VPNService: inner, history: r.history, logger: r.logger}
}

func (r *recordingSession) Login(ctx context.Context) (string, error) {
	text, err := r.VPNService.Login(ctx)
	r.record(ctx, models.OperationLogin, "", text, err)
	return text, err
}

func (r *recordingSession) Logout(ctx context.Context) (string, error) {
	text, err := r.VPNService.Logout(ctx)
	r.record(ctx, models.OperationLogout, "", text, err)
	return text, err
}

func (r *recordingSession) Connect(ctx context.Context, location string) (string, error) {
	text, err := r.VPNService.Connect(ctx, location)
	r.record(ctx, models.OperationConnect, location, text, err)
	return text, err
}

func (r *recordingSession) Disconnect(ctx context.Context) (string, error) {
	text, err := r.VPNService.Disconnect(ctx)
	r.record(ctx, models.OperationDisconnect, "", text, err)
	return text, err
}

func (r *recordingSession) record(ctx context.Context, operation, argument, text string, opErr error) {
	entry := models.HistoryEntry{
		Operation: operation,
		Argument:  argument,
		Outcome:   models.OutcomeOK,
		Message:   strings.TrimSpace(text),
	}
	if opErr != nil {
		entry.Outcome = models.OutcomeError
		entry.Message = opErr.Error()
	}

	if err := r.history.Record(ctx, entry); err != nil {
		r.logger.Err(err).
			Str("func", "recordingSession.record").
			Str("operation", operation).
			Str("location", argument).
			Msg("failed to record history entry")
	}
}
