// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// IDGenerator produces history entry IDs.
type IDGenerator interface {
	Generate() string
}

type historyService struct {
	repository store.HistoryRepository
	ids        IDGenerator
	now        func() time.Time
	logger     *logger.Logger
}

// NewHistoryService returns a HistoryService over repository. IDs come from
// ids, timestamps from the wall clock in UTC.
func NewHistoryService(repository store.HistoryRepository, ids IDGenerator, logger *logger.Logger) HistoryService {
	return &historyService{
		repository: repository,
		ids:        ids,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     logger,
	}
}

func (h *historyService) Record(ctx context.Context, entry models.HistoryEntry) error {
	if entry.ID == "" {
		entry.ID = h.ids.Generate()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = h.now()
	}

	if err := h.repository.Save(ctx, entry); err != nil {
		return fmt.Errorf("save history entry: %w", err)
	}

	h.logger.Debug().
		Str("func", "historyService.Record").
		Str("id", entry.ID).
		Str("operation", entry.Operation).
		Str("outcome", entry.Outcome).
		Msg("history entry recorded")
	return nil
}

func (h *historyService) List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	entries, err := h.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}

func (h *historyService) RecentLocations(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	locations, err := h.repository.RecentLocations(ctx, uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("recent locations: %w", err)
	}
	return locations, nil
}

// remoteHistory reads the daemon's history over REST. The daemon records
// its own operations, so there is nothing to write from the client side.
type remoteHistory struct {
	adapter adapter.DaemonAdapter
}

// NewRemoteHistoryReader returns a HistoryReader backed by the daemon.
func NewRemoteHistoryReader(daemonAdapter adapter.DaemonAdapter) HistoryReader {
	return &remoteHistory{adapter: daemonAdapter}
}

func (r *remoteHistory) List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error) {
	entries, err := r.adapter.History(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", mapAdapterError(err))
	}
	return entries, nil
}

// RecentLocations derives the locations from the connect history, since the
// daemon API only exposes the raw entries.
func (r *remoteHistory) RecentLocations(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return []string{}, nil
	}

	entries, err := r.List(ctx, models.HistoryFilter{Operation: models.OperationConnect, Limit: store.MaxHistoryLimit})
	if err != nil {
		return nil, err
	}
	return recentLocations(entries, limit), nil
}

// recentLocations picks distinct non-empty arguments of successful entries,
// keeping the order of entries (newest first).
func recentLocations(entries []models.HistoryEntry, limit int) []string {
	seen := make(map[string]struct{}, limit)
	locations := make([]string, 0, limit)
	for _, e := range entries {
		if e.Outcome != models.OutcomeOK || e.Argument == "" {
			continue
		}
		if _, ok := seen[e.Argument]; ok {
			continue
		}
		seen[e.Argument] = struct{}{}
		locations = append(locations, e.Argument)
		if len(locations) == limit {
			break
		}
	}
	return locations
}
