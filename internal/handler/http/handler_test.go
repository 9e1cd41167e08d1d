// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vpn-pilot/internal/adapter"
	"github.com/MKhiriev/go-vpn-pilot/internal/logger"
	"github.com/MKhiriev/go-vpn-pilot/internal/metrics"
	"github.com/MKhiriev/go-vpn-pilot/internal/mock"
	"github.com/MKhiriev/go-vpn-pilot/internal/service"
	"github.com/MKhiriev/go-vpn-pilot/internal/utils"
)

const (
	testSignKey  = "test-sign-key"
	testIssuer   = "test-issuer"
	testOperator = "tester"
	testVersion  = "1.2.3"
)

type testEnv struct {
	fake    *adapter.FakeExecutor
	history *mock.MockHistoryService
	metrics *metrics.Metrics
	handler *Handler
	router  *chi.Mux
	token   string
}

// newTestEnv wires a real session over executor behind the full router.
func newTestEnv(t *testing.T, executor adapter.CommandExecutor) *testEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	history := mock.NewMockHistoryService(ctrl)

	appInfo, err := service.NewAppInfoService(testVersion)
	require.NoError(t, err)

	services := &service.Services{
		VPNService:     service.NewSession(executor, logger.Nop()),
		HistoryService: history,
		AuthService:    service.NewAuthService(testSignKey, testIssuer, 0, logger.Nop()),
		AppInfoService: appInfo,
	}

	token, err := utils.GenerateJWTToken(testIssuer, testOperator, time.Hour, testSignKey)
	require.NoError(t, err)

	m := metrics.New()
	h := NewHandler(services, m, logger.Nop())

	env := &testEnv{
		history: history,
		metrics: m,
		handler: h,
		router:  h.Init(),
		token:   token.SignedString,
	}
	if fake, ok := executor.(*adapter.FakeExecutor); ok {
		env.fake = fake
	}
	return env
}

func newFakeEnv(t *testing.T, loggedIn, connected bool) *testEnv {
	return newTestEnv(t, adapter.NewFakeExecutor(loggedIn, connected))
}

func (e *testEnv) do(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Authorization", "Bearer "+e.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// requestCount reads http_requests_total for one label set.
func requestCount(t *testing.T, reg *prometheus.Registry, method, route, status string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	want := map[string]string{"method": method, "route": route, "status": status}
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
	metricLoop:
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if v, ok := want[label.GetName()]; ok && v != label.GetValue() {
					continue metricLoop
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

// ── NewHandler / Init ──

func TestNewHandler(t *testing.T) {
	m := metrics.New()
	h := NewHandler(&service.Services{}, m, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.validator)
	assert.Same(t, m, h.metrics)
}

func TestInit_RegistersRoutes(t *testing.T) {
	env := newFakeEnv(t, true, false)

	want := map[string][]string{
		"/api/version":                    {http.MethodGet},
		"/metrics":                        {http.MethodGet},
		"/api/session":                    {http.MethodGet},
		"/api/account":                    {http.MethodGet},
		"/api/status":                     {http.MethodGet},
		"/api/countries":                  {http.MethodGet},
		"/api/countries/{country}/cities": {http.MethodGet},
		"/api/login":                      {http.MethodPost},
		"/api/logout":                     {http.MethodPost},
		"/api/connect":                    {http.MethodPost},
		"/api/disconnect":                 {http.MethodPost},
		"/api/history":                    {http.MethodGet},
	}

	got := map[string][]string{}
	err := chi.Walk(env.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = append(got[route], method)
		return nil
	})
	require.NoError(t, err)

	for route, methods := range want {
		assert.ElementsMatch(t, methods, got[route], route)
	}
}

func TestInit_UnknownMethodReturnsNotFound(t *testing.T) {
	env := newFakeEnv(t, true, false)

	rec := env.do(t, http.MethodDelete, "/api/version", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_UnknownRouteReturnsNotFound(t *testing.T) {
	env := newFakeEnv(t, true, false)

	rec := env.do(t, http.MethodGet, "/api/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_PublicRoutesNeedNoToken(t *testing.T) {
	env := newFakeEnv(t, true, false)

	for _, path := range []string{"/api/version", "/metrics"} {
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestInit_ProtectedRoutesNeedToken(t *testing.T) {
	env := newFakeEnv(t, true, false)

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, env.fake.Calls(), "rejected requests must not reach the CLI")
}

// ── version ──

func TestGetServerVersion(t *testing.T) {
	env := newFakeEnv(t, false, false)

	rec := env.do(t, http.MethodGet, "/api/version", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, testVersion, rec.Body.String())
}
