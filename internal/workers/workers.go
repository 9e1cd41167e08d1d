// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers registers the status watch job polling at cfg.StatusInterval.
func NewWorkers(services *service.Services, cfg config.ServerWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			&statusWatchWorker{job: services.StatusWatchJob, interval: cfg.StatusInterval},
		},
		logger: logger,
	}
}

func (w *Workers) Run(ctx context.Context) {
	w.log().Info().Str("func", "*Workers.Run").Int("count", len(w.workers)).Msg("starting workers")
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.log().Info().Str("func", "*Workers.Stop").Msg("workers stopped")
}

func (w *Workers) log() *logger.Logger {
	if w.logger == nil {
		return logger.Nop()
	}
	return w.logger
}

type statusWatchWorker struct {
	job      service.StatusWatchJob
	interval time.Duration
}

func (s *statusWatchWorker) Run(ctx context.Context) {
	s.job.Start(ctx, s.interval)
}

func (s *statusWatchWorker) Stop() {
	s.job.Stop()
}
