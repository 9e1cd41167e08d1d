// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/models"
)

type instrumentedExecutor struct {
	next    CommandExecutor
	metrics *metrics.Metrics
}

// NewInstrumentedExecutor wraps next so that every invocation is counted
// and timed in m.
func NewInstrumentedExecutor(next CommandExecutor, m *metrics.Metrics) CommandExecutor {
	return &instrumentedExecutor{next: next, metrics: m}
}

func (i *instrumentedExecutor) Execute(ctx context.Context, name string, args ...string) (models.CommandResult, error) {
	result, err := i.next.Execute(ctx, name, args...)
	if err != nil {
		i.metrics.CommandFailed(name)
		return result, err
	}

	i.metrics.ObserveCommand(name, result.ExitCode, result.Duration)
	return result, nil
}
