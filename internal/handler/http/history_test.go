// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/app"
	"github.com/MKhiriev/go-vpn-pilot/internal/store"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

func TestGetHistory(t *testing.T) {
	env := newFakeEnv(t, true, false)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entries := []models.HistoryEntry{
		{ID: "b", Operation: models.OperationConnect, Argument: "Germany", Outcome: models.OutcomeOK, CreatedAt: createdAt},
		{ID: "a", Operation: models.OperationConnect, Argument: "France", Outcome: models.OutcomeError, Message: "connect: command failed", CreatedAt: createdAt.Add(-time.Minute)},
	}

	env.history.EXPECT().
		List(gomock.Any(), models.HistoryFilter{Operation: models.OperationConnect, Limit: 2}).
		Return(entries, nil)

	rec := env.do(t, http.MethodGet, "/api/history?operation=connect&limit=2", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[models.HistoryResponse](t, rec.Body.String()).Items
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.True(t, createdAt.Equal(got[0].CreatedAt))
	assert.Equal(t, "connect: command failed", got[1].Message)
}

func TestGetHistory_NoFilter(t *testing.T) {
	env := newFakeEnv(t, true, false)

	env.history.EXPECT().List(gomock.Any(), models.HistoryFilter{}).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/api/history", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestGetHistory_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric limit", query: "?limit=ten"},
		{name: "negative limit", query: "?limit=-1"},
		{name: "limit too large", query: "?limit=100000"},
		{name: "unknown operation", query: "?operation=status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newFakeEnv(t, true, false)

			rec := env.do(t, http.MethodGet, "/api/history"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, errorBody(rec.Body.String()))
		})
	}
}

func TestGetHistory_StoreError(t *testing.T) {
	env := newFakeEnv(t, true, false)

	env.history.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(store.ErrExecutingQuery, errors.New("disk I/O error")))

	rec := env.do(t, http.MethodGet, "/api/history", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, app.MsgInternalServerError, errorBody(rec.Body.String()))
}
