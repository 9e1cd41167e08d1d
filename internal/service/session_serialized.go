// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vpn-pilot/models"
)

// serializedSession lets at most one operation of the wrapped session run
// at a time, so a guard probe and its command are never interleaved with
// another caller's invocations.
type serializedSession struct {
	mu    sync.Mutex
	inner VPNService
}

// NewSerializedSession returns a wrapper that serializes every call.
func NewSerializedSession() VPNServiceWrapper {
	return &serializedSession{}
}

func (s *serializedSession) Wrap(inner VPNService) VPNService {
	return &serializedSession{inner: inner}
}

func (s *serializedSession) IsLoggedIn(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.IsLoggedIn(ctx)
}

func (s *serializedSession) Login(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Login(ctx)
}

func (s *serializedSession) Logout(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Logout(ctx)
}

func (s *serializedSession) CheckAccount(ctx context.Context) (models.AccountInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.CheckAccount(ctx)
}

func (s *serializedSession) GetStatus(ctx context.Context) (models.ConnectionStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetStatus(ctx)
}

func (s *serializedSession) GetCountries(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetCountries(ctx)
}

func (s *serializedSession) GetCities(ctx context.Context, country string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.GetCities(ctx, country)
}

func (s *serializedSession) Connect(ctx context.Context, location string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Connect(ctx, location)
}

func (s *serializedSession) Disconnect(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Disconnect(ctx)
}
