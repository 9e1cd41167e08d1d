// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/app"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/internal/validators"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: the first match wins. Bodies are the shared
// app messages so the daemon client can map them back to sentinels.
var errorStatusMap = []errorStatus{
	{service.ErrNotLoggedIn, http.StatusPreconditionFailed, app.MsgNotLoggedIn},
	{service.ErrAlreadyLoggedIn, http.StatusConflict, app.MsgAlreadyLoggedIn},
	{service.ErrParseFailure, http.StatusBadGateway, app.MsgParseFailure},
	{service.ErrCommandFailed, http.StatusBadGateway, app.MsgCommandFailed},
	{adapter.ErrCommandNotStarted, http.StatusBadGateway, app.MsgCommandNotStarted},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{validators.ErrInvalidLocation, http.StatusBadRequest, app.MsgInvalidLocation},
	{validators.ErrInvalidOperation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrInvalidLimit, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidRequestBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidQueryParameter, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
}

func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err with the request logger and answers with the mapped
// status and message. A failed command also carries the CLI output so the
// client sees the reason.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status, message := statusFromError(err)
	if output := service.FailureOutput(err); output != "" && message == app.MsgCommandFailed {
		message += ": " + output
	}

	log := logger.FromRequest(r)
	event := log.Warn()
	if status == http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).
		Str("func", fn).
		Int("status", status).
		Msg("request failed")

	http.Error(w, message, status)
}
