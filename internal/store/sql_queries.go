// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

const (
	historyTable = "history"

	// DefaultHistoryLimit applies when a filter carries no limit.
	DefaultHistoryLimit uint64 = 50
	// MaxHistoryLimit caps any requested limit.
	MaxHistoryLimit uint64 = 500
)

var historyColumns = []string{"id", "operation", "argument", "outcome", "message", "created_at"}

func clampLimit(limit uint64) uint64 {
	switch {
	case limit == 0:
		return DefaultHistoryLimit
	case limit > MaxHistoryLimit:
		return MaxHistoryLimit
	}
	return limit
}

// buildInsertHistoryQuery renders the INSERT for one entry.
func buildInsertHistoryQuery(b sq.StatementBuilderType, entry models.HistoryEntry) (string, []any, error) {
	query, args, err := b.Insert(historyTable).
		Columns(historyColumns...).
		Values(entry.ID, entry.Operation, entry.Argument, entry.Outcome, entry.Message, entry.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectHistoryQuery renders the newest-first listing for filter.
// Ties on created_at fall back to the time-ordered id.
func buildSelectHistoryQuery(b sq.StatementBuilderType, filter models.HistoryFilter) (string, []any, error) {
	q := b.Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(clampLimit(filter.Limit))

	if filter.Operation != "" {
		q = q.Where(sq.Eq{"operation": filter.Operation})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildRecentLocationsQuery renders the distinct locations of successful
// connects, most recently used first.
func buildRecentLocationsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	query, args, err := b.Select("argument").
		From(historyTable).
		Where(sq.Eq{"operation": models.OperationConnect, "outcome": models.OutcomeOK}).
		Where(sq.NotEq{"argument": ""}).
		GroupBy("argument").
		OrderBy("MAX(created_at) DESC").
		Limit(clampLimit(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
