// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrHistoryNotSaved is returned when an INSERT of a history entry
	// completes without error but affects no rows.
	ErrHistoryNotSaved = errors.New("history entry was not saved")

	// ErrUnsupportedDSN is returned when the DSN names a database the store
	// cannot open.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrEmptyDSN is returned when no DSN was configured.
	ErrEmptyDSN = errors.New("empty database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a result row cannot be scanned.
	ErrScanningRow = errors.New("error scanning row")
)
