// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// historyRepository is the SQL implementation of [HistoryRepository].
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] over db.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating history repository")
	return &historyRepository{db: db, logger: logger}
}

// Save inserts entry. A failure the dialect classifies as retryable gets
// exactly one more attempt.
func (r *historyRepository) Save(ctx context.Context, entry models.HistoryEntry) error {
	query, args, err := buildInsertHistoryQuery(r.db.builder(), entry)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil && r.db.retryable(err) {
		r.logger.Warn().Err(err).
			Str("func", "*historyRepository.Save").
			Str("id", entry.ID).
			Msg("retrying history insert")
		res, err = r.db.ExecContext(ctx, query, args...)
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*historyRepository.Save").Str("id", entry.ID).Msg("error inserting history entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrHistoryNotSaved
	}

	return nil
}

func (r *historyRepository) List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	query, args, err := buildSelectHistoryQuery(r.db.builder(), filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*historyRepository.List").Msg("error querying history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.HistoryEntry, 0)
	for rows.Next() {
		var e models.HistoryEntry
		if err = rows.Scan(&e.ID, &e.Operation, &e.Argument, &e.Outcome, &e.Message, &e.CreatedAt); err != nil {
			r.logger.Err(err).Str("func", "*historyRepository.List").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return entries, nil
}

func (r *historyRepository) RecentLocations(ctx context.Context, limit uint64) ([]string, error) {
	query, args, err := buildRecentLocationsQuery(r.db.builder(), limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*historyRepository.RecentLocations").Msg("error querying recent locations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	locations := make([]string, 0)
	for rows.Next() {
		var location string
		if err = rows.Scan(&location); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		locations = append(locations, location)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return locations, nil
}
