// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It picks the session backend from the configuration (the local CLI with
// a history database, or a daemon reached over REST), then runs the
// terminal UI on top of it until the user quits.
package client
