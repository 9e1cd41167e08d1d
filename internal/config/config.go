// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by both
// binaries. It is populated by merging flags, environment variables, an
// optional .env file, an optional JSON file and [defaultConfig].
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings of the wrapped CLI, the daemon token and logging.
	App App `envPrefix:"APP_"`

	// Storage holds the operation history database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the daemon listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the daemon address used by a remote client. An empty
	// address means the client drives the local CLI directly.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file to read. When empty, "./.env" is tried and
	// silently skipped if it does not exist.
	// Populated via the ENV_FILE environment variable or the -env-file flag.
	DotEnvPath string `env:"ENV_FILE"`
}

// Storage groups the configuration for persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// Binary is the name or path of the wrapped VPN CLI.
	// Env: APP_BINARY
	Binary string `env:"BINARY"`

	// Fake replaces the real CLI with the built-in deterministic stand-in.
	// Env: APP_FAKE
	Fake bool `env:"FAKE"`

	// TokenSignKey is the shared HMAC secret used to sign and verify daemon
	// JWTs. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in and required from every JWT.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a minted JWT stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the terminal UI writes its JSON log, since it owns
	// stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Server holds network and timeout settings for the daemon.
type Server struct {
	// HTTPAddress is the TCP address the daemon listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the history database.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// opens PostgreSQL through pgx, anything else is a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the client-side daemon adapter.
type Adapter struct {
	// HTTPAddress is the daemon base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatusInterval is the period of the daemon status watch job.
	// Env: WORKERS_STATUS_INTERVAL
	StatusInterval time.Duration `env:"STATUS_INTERVAL"`
}

// defaultConfig returns the lowest-priority source of the merge.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Binary:        "nordvpn",
			TokenIssuer:   "go-vpn-pilot",
			TokenDuration: time.Hour,
			Version:       "dev",
			LogFile:       "vpn-pilot.log",
		},
		Storage: Storage{
			DB: DB{DSN: "vpn-pilot.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8787",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			StatusInterval: 30 * time.Second,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// using args as the command-line arguments (without the program name).
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withDotEnv().
		withJSON().
		withDefaults().
		build()
}
