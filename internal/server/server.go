// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-vpn-pilot/internal/config"
	"github.com/MKhiriev/go-vpn-pilot/internal/handler"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers

	shutdownOnce sync.Once
	logger       *logger.Logger
}

func NewServer(handlers *handler.Handlers, bgWorkers *workers.Workers, cfg config.ServerHTTP, logger *logger.Logger) (Server, error) {
	logger.Info().Str("func", "NewServer").Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bgWorkers,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx, s.httpServer.RunServer); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

// Shutdown stops the listener first so no new command starts, then the
// workers. It is safe to call more than once.
func (s *server) Shutdown() {
	s.shutdownOnce.Do(func() {
		s.httpServer.Shutdown()
		if s.workers != nil {
			s.workers.Stop()
		}
	})
}

// run starts the workers and serve, then blocks until ctx is done or serve
// fails. Either way everything is shut down before it returns.
func (s *server) run(ctx context.Context, serve func() error) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	if s.workers != nil {
		s.workers.Run(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- serve()
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Str("func", "*server.run").Msg("stop signal received")
	case err = <-serveErr:
		if err != nil {
			err = fmt.Errorf("http server: %w", err)
		}
	}

	s.Shutdown()
	s.logger.Info().Str("func", "*server.run").Msg("server shutdown gracefully")

	return err
}
