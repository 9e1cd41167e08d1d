// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatherValue returns the value of the first sample of the named family
// whose labels contain all of want.
func gatherValue(t *testing.T, reg *prometheus.Registry, name string, want map[string]string) (float64, bool) {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			match := true
			for k, v := range want {
				if labels[k] != v {
					match = false
					break
				}
			}
			if !match {
				continue
			}
			switch {
			case m.GetCounter() != nil:
				return m.GetCounter().GetValue(), true
			case m.GetGauge() != nil:
				return m.GetGauge().GetValue(), true
			case m.GetHistogram() != nil:
				return float64(m.GetHistogram().GetSampleCount()), true
			}
		}
	}
	return 0, false
}

func TestNew_IndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.ObserveCommand("status", 0, time.Millisecond)

	_, found := gatherValue(t, b.Registry(), "vpn_commands_total", nil)
	assert.False(t, found)

	v, found := gatherValue(t, a.Registry(), "vpn_commands_total", map[string]string{"command": "status", "exit_code": "0"})
	require.True(t, found)
	assert.Equal(t, 1.0, v)
}

func TestObserveCommand(t *testing.T) {
	m := New()

	m.ObserveCommand("login", 1, 20*time.Millisecond)
	m.ObserveCommand("login", 1, 30*time.Millisecond)
	m.ObserveCommand("login", 0, 10*time.Millisecond)

	v, ok := gatherValue(t, m.Registry(), "vpn_commands_total", map[string]string{"command": "login", "exit_code": "1"})
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	count, ok := gatherValue(t, m.Registry(), "vpn_command_duration_seconds", map[string]string{"command": "login"})
	require.True(t, ok)
	assert.Equal(t, 3.0, count)
}

func TestCommandFailed(t *testing.T) {
	m := New()
	m.CommandFailed("connect")

	v, ok := gatherValue(t, m.Registry(), "vpn_command_errors_total", map[string]string{"command": "connect"})
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestSetConnected(t *testing.T) {
	m := New()

	m.SetConnected(true)
	v, ok := gatherValue(t, m.Registry(), "vpn_connected", nil)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	m.SetConnected(false)
	v, _ = gatherValue(t, m.Registry(), "vpn_connected", nil)
	assert.Equal(t, 0.0, v)
}

func TestObserveRequest(t *testing.T) {
	m := New()
	m.ObserveRequest(http.MethodGet, "/api/status", http.StatusOK, 5*time.Millisecond)

	v, ok := gatherValue(t, m.Registry(), "http_requests_total", map[string]string{"method": "GET", "route": "/api/status", "status": "200"})
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveCommand("countries", 0, time.Millisecond)
	m.SetConnected(true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "vpn_commands_total")
	assert.Contains(t, body, "vpn_command_duration_seconds")
	assert.Contains(t, body, "vpn_connected 1")
	assert.Contains(t, body, "go_goroutines")
}
