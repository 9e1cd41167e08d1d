// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package parser

import "errors"

var (
	// ErrNotLoggedIn is returned by [ParseAccount] when the account output
	// carries the "not logged in" marker.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrParseFailure is returned when a required field cannot be extracted
	// from output that was expected to contain it.
	ErrParseFailure = errors.New("unexpected command output format")

	// ErrInvalidEncoding is returned (wrapped in ErrParseFailure) when raw
	// output is not valid UTF-8.
	ErrInvalidEncoding = errors.New("output is not valid utf-8")
)
