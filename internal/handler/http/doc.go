// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the daemon's REST API.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging, request metrics, and response compression
// are handled here before requests are delegated to the session service.
package http
