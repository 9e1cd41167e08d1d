// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ServerApp holds daemon application settings.
type ServerApp struct {
	Binary       string
	Fake         bool
	TokenSignKey string
	TokenIssuer  string
	Version      string
}

// ServerHTTP holds daemon listener settings.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ServerDB holds daemon history database settings.
type ServerDB struct {
	DSN string
}

// ServerStorage groups daemon storage settings.
type ServerStorage struct {
	DB ServerDB
}

// ServerWorkers holds daemon background job settings.
type ServerWorkers struct {
	StatusInterval time.Duration
}

// ServerConfig is the daemon configuration assembled from [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
	Workers ServerWorkers
}

// GetServerConfig builds and validates the daemon view from the process
// arguments and environment.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			Binary:       cfg.App.Binary,
			Fake:         cfg.App.Fake,
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: ServerDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ServerWorkers{StatusInterval: cfg.Workers.StatusInterval},
	}
}
