// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

// getHistory lists recorded operations, newest first. Optional query
// parameters: operation (login, logout, connect, disconnect) and limit.
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseHistoryFilter(r)
	if err != nil {
		writeError(w, r, "*Handler.getHistory", err)
		return
	}

	if err = h.validator.Validate(ctx, filter); err != nil {
		writeError(w, r, "*Handler.getHistory", err)
		return
	}

	entries, err := h.services.HistoryService.List(ctx, filter)
	if err != nil {
		writeError(w, r, "*Handler.getHistory", err)
		return
	}
	if entries == nil {
		entries = []models.HistoryEntry{}
	}

	h.writeJSON(w, r, "*Handler.getHistory", models.HistoryResponse{Items: entries})
}

func parseHistoryFilter(r *http.Request) (models.HistoryFilter, error) {
	query := r.URL.Query()
	filter := models.HistoryFilter{Operation: query.Get("operation")}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.HistoryFilter{}, fmt.Errorf("%w: limit: %w", ErrInvalidQueryParameter, err)
		}
		filter.Limit = limit
	}

	return filter, nil
}
