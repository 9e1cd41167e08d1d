// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

// DefaultStatusInterval is used when Start receives a non-positive interval.
const DefaultStatusInterval = 30 * time.Second

type statusWatchJob struct {
	session VPNService
	metrics *metrics.Metrics
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// last is only touched by the polling goroutine.
	last models.ConnectionState
}

// NewStatusWatchJob creates a job that polls session.GetStatus on a ticker,
// keeps the vpn_connected gauge of m current and logs state transitions.
// The job is idle until Start is called.
func NewStatusWatchJob(session VPNService, m *metrics.Metrics, logger *logger.Logger) StatusWatchJob {
	return &statusWatchJob{session: session, metrics: m, logger: logger}
}

// Start implements StatusWatchJob. It stops any previously running job, polls
// once immediately and then every interval until ctx is cancelled or Stop
// is called.
func (j *statusWatchJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultStatusInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		j.poll(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.poll(jobCtx)
			}
		}
	}()
}

// Stop implements StatusWatchJob. It cancels the goroutine's context and
// blocks until the goroutine has exited. A no-op when the job is not running.
func (j *statusWatchJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *statusWatchJob) poll(ctx context.Context) {
	status, err := j.session.GetStatus(ctx)
	if err != nil {
		// logged out or CLI failure: nothing is connected through us
		status = models.ConnectionStatus{State: models.Disconnected}
		j.logger.Debug().Err(err).Str("func", "statusWatchJob.poll").Msg("status poll failed")
	}

	j.metrics.SetConnected(status.IsConnected())

	if status.State != j.last {
		event := j.logger.Info().
			Str("func", "statusWatchJob.poll").
			Str("from", string(j.last)).
			Str("to", string(status.State))
		if status.Country != nil {
			event = event.Str("country", *status.Country)
		}
		event.Msg("connection state changed")
		j.last = status.State
	}
}
