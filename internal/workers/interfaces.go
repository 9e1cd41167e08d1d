// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the daemon's background jobs.
//
// A [Worker] starts its own goroutines in Run and returns immediately; Stop
// blocks until they have exited. [Workers] fans both calls out over every
// registered worker.
package workers

import "context"

// Worker is implemented by every background job.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
