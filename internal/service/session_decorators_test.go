// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/mock"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// overlapExecutor wraps a FakeExecutor and remembers the highest number of
// invocations that were in flight at once.
type overlapExecutor struct {
	inner    *adapter.FakeExecutor
	inFlight atomic.Int32
	maxSeen  atomic.Int32
}

func (o *overlapExecutor) Execute(ctx context.Context, name string, args ...string) (models.CommandResult, error) {
	n := o.inFlight.Add(1)
	defer o.inFlight.Add(-1)
	for {
		m := o.maxSeen.Load()
		if n <= m || o.maxSeen.CompareAndSwap(m, n) {
			break
		}
	}
	time.Sleep(time.Millisecond)
	return o.inner.Execute(ctx, name, args...)
}

// ── serializedSession ────────────────────────────────────────────────────────

func TestSerializedSession_NoOverlappingInvocations(t *testing.T) {
	executor := &overlapExecutor{inner: adapter.NewFakeExecutor(true, false)}
	s := NewSerializedSession().Wrap(NewSession(executor, logger.Nop()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.GetStatus(context.Background())
			_, _ = s.GetCountries(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), executor.maxSeen.Load())
	assert.Len(t, executor.inner.Calls(), 8*4)
}

func TestSerializedSession_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVPNService(ctrl)
	s := NewSerializedSession().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().IsLoggedIn(ctx).Return(true)
	inner.EXPECT().Login(ctx).Return("login", nil)
	inner.EXPECT().Logout(ctx).Return("logout", nil)
	inner.EXPECT().CheckAccount(ctx).Return(models.AccountInfo{}, nil)
	inner.EXPECT().GetStatus(ctx).Return(models.ConnectionStatus{State: models.Disconnected}, nil)
	inner.EXPECT().GetCountries(ctx).Return([]string{"A"}, nil)
	inner.EXPECT().GetCities(ctx, "A").Return([]string{"B"}, nil)
	inner.EXPECT().Connect(ctx, "B").Return("connected", nil)
	inner.EXPECT().Disconnect(ctx).Return("", ErrNotLoggedIn)

	assert.True(t, s.IsLoggedIn(ctx))
	text, _ := s.Login(ctx)
	assert.Equal(t, "login", text)
	text, _ = s.Logout(ctx)
	assert.Equal(t, "logout", text)
	_, _ = s.CheckAccount(ctx)
	_, _ = s.GetStatus(ctx)
	countries, _ := s.GetCountries(ctx)
	assert.Equal(t, []string{"A"}, countries)
	cities, _ := s.GetCities(ctx, "A")
	assert.Equal(t, []string{"B"}, cities)
	text, _ = s.Connect(ctx, "B")
	assert.Equal(t, "connected", text)
	_, err := s.Disconnect(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── recordingSession ─────────────────────────────────────────────────────────

func TestRecordingSession_RecordsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)
	s, _ := newFakeSession(true, false)
	rec := NewRecordingSession(history, logger.Nop()).Wrap(s)

	history.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.HistoryEntry) error {
			assert.Equal(t, models.OperationConnect, e.Operation)
			assert.Equal(t, "Mock_Country_2", e.Argument)
			assert.Equal(t, models.OutcomeOK, e.Outcome)
			assert.Contains(t, e.Message, "You are connected")
			return nil
		})

	_, err := rec.Connect(context.Background(), "Mock_Country_2")
	require.NoError(t, err)
}

func TestRecordingSession_RecordsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)
	s, _ := newFakeSession(false, false)
	rec := NewRecordingSession(history, logger.Nop()).Wrap(s)

	history.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.HistoryEntry) error {
			assert.Equal(t, models.OperationLogout, e.Operation)
			assert.Equal(t, models.OutcomeError, e.Outcome)
			assert.Contains(t, e.Message, "not logged in")
			return nil
		})

	_, err := rec.Logout(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestRecordingSession_StorageFailureIsNotReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)
	s, _ := newFakeSession(true, true)
	rec := NewRecordingSession(history, logger.Nop()).Wrap(s)

	history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	text, err := rec.Disconnect(context.Background())
	require.NoError(t, err)
	assert.Contains(t, text, "disconnected")
}

func TestRecordingSession_ReadsAreNotRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl) // no Record expected
	s, _ := newFakeSession(true, false)
	rec := NewRecordingSession(history, logger.Nop()).Wrap(s)
	ctx := context.Background()

	assert.True(t, rec.IsLoggedIn(ctx))
	_, err := rec.GetStatus(ctx)
	require.NoError(t, err)
	_, err = rec.GetCountries(ctx)
	require.NoError(t, err)
	_, err = rec.CheckAccount(ctx)
	require.NoError(t, err)
}

func TestRecordingSession_LoginRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)
	s, _ := newFakeSession(false, false)
	rec := NewRecordingSession(history, logger.Nop()).Wrap(s)

	history.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.HistoryEntry) error {
			assert.Equal(t, models.OperationLogin, e.Operation)
			assert.Empty(t, e.Argument)
			return nil
		})

	_, err := rec.Login(context.Background())
	require.NoError(t, err)
}
