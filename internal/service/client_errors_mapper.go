// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/app"
)

// mapAdapterError translates the adapter's transport error into a session
// error. A failed command comes back as a *CommandError holding the output
// the daemon forwarded.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrPreconditionFailed):
		return ErrNotLoggedIn

	case errors.Is(err, adapter.ErrConflict):
		return ErrAlreadyLoggedIn

	case errors.Is(err, adapter.ErrBadGateway):
		msg := extractBody(err, adapter.ErrBadGateway)
		switch {
		case strings.HasPrefix(msg, app.MsgParseFailure):
			return ErrParseFailure
		case strings.HasPrefix(msg, app.MsgCommandNotStarted):
			return adapter.ErrCommandNotStarted
		case strings.HasPrefix(msg, app.MsgCommandFailed):
			output := strings.TrimPrefix(strings.TrimPrefix(msg, app.MsgCommandFailed), ":")
			return &CommandError{Output: strings.TrimSpace(output)}
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		msg := extractBody(err, adapter.ErrUnauthorized)
		if msg == app.MsgTokenIsExpiredOrInvalid || msg == app.MsgNoAuthorizationHeader {
			return ErrTokenIsExpiredOrInvalid
		}
	}

	return err
}

// extractBody returns the response body from a message of the form
// "<op> request: bad gateway: <body>", where sentinel is the status error.
func extractBody(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if idx := strings.Index(msg, prefix); idx != -1 {
		return msg[idx+len(prefix):]
	}
	return msg
}
