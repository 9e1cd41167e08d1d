// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the client and daemon binaries.
//
// Configuration is assembled from multiple sources. For every field the
// first source that sets a non-zero value wins, in this order:
//  1. Command-line flags
//  2. Environment variables
//  3. A .env file (see [StructuredConfig.DotEnvPath])
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry points are [GetClientConfig] for the terminal UI and
// [GetServerConfig] for the daemon.
package config
