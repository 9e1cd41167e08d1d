// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the daemon: the HTTP listener and the background
// workers, from startup through signal handling to graceful shutdown.
package server
