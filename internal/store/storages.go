// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
)

// Storages bundles the opened database with the repositories built on it.
type Storages struct {
	DB                *DB
	HistoryRepository HistoryRepository
}

// NewStorages opens dsn, applies the migrations and builds the
// repositories.
func NewStorages(ctx context.Context, dsn string, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, dsn, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to history database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating history database: %w", err)
	}

	return &Storages{
		DB:                db,
		HistoryRepository: NewHistoryRepository(db, log),
	}, nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	return s.DB.Close()
}
