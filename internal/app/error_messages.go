// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// daemon handlers and by the remote session that reads their responses.
//
// All Msg* constants are the plain-text bodies of error responses. The
// daemon writes them and the remote session matches on them to restore the
// original error kind, so both sides must use these exact strings.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a query parameter is malformed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLocation is returned when a country or city name contains
	// characters the CLI would treat as extra arguments.
	MsgInvalidLocation = "invalid location"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoAuthorizationHeader is returned when a protected route is called
	// without a bearer token.
	MsgNoAuthorizationHeader = "no authorization header"

	// MsgNotLoggedIn is returned with 412 when the CLI must be logged in
	// for the requested operation.
	MsgNotLoggedIn = "not logged in"

	// MsgAlreadyLoggedIn is returned with 409 when login is requested while
	// the CLI is already logged in.
	MsgAlreadyLoggedIn = "already logged in"

	// MsgParseFailure is returned with 502 when the CLI output did not have
	// the expected shape.
	MsgParseFailure = "unexpected command output format"

	// MsgCommandFailed is returned with 502 when the CLI exited with a
	// non-zero code. The CLI output follows after ": " when there is any.
	MsgCommandFailed = "command failed"

	// MsgCommandNotStarted is returned with 502 when the CLI binary could
	// not be started on the daemon host.
	MsgCommandNotStarted = "command could not be started"
)
