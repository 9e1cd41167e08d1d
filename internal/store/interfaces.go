// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the operation history of the session.
//
// The history lives in a single "history" table created by the goose
// migrations in the migrations package. SQLite (mattn/go-sqlite3) is the
// default; a postgres:// or postgresql:// DSN switches to PostgreSQL through
// the pgx stdlib driver. Queries are built with squirrel so the same code
// serves both placeholder styles.
package store

import (
	"context"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository stores and queries history entries.
type HistoryRepository interface {
	// Save inserts entry. The ID must already be set.
	Save(ctx context.Context, entry models.HistoryEntry) error

	// List returns entries newest first. A zero filter.Limit falls back to
	// DefaultHistoryLimit; larger values are capped at MaxHistoryLimit.
	List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error)

	// RecentLocations returns distinct non-empty locations of successful
	// connects ordered by their latest use.
	RecentLocations(ctx context.Context, limit uint64) ([]string, error)
}

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
