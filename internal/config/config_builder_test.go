// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func writeTempDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier source keeps its value
// and later sources only fill zero fields.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Binary: "/opt/nordvpn"}},
		&StructuredConfig{App: App{Binary: "nordvpn", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/opt/nordvpn", cfg.App.Binary)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_BINARY", "/usr/local/bin/nordvpn")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "/usr/local/bin/nordvpn", b.configs[0].App.Binary)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_ExplicitPath(t *testing.T) {
	path := writeTempDotEnv(t, "APP_TOKEN_SIGN_KEY=dotenv-secret\nWORKERS_STATUS_INTERVAL=5s\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: path})
	b.withDotEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "dotenv-secret", b.configs[1].App.TokenSignKey)
	assert.Equal(t, 5*time.Second, b.configs[1].Workers.StatusInterval)
}

func TestWithDotEnv_DoesNotTouchProcessEnv(t *testing.T) {
	path := writeTempDotEnv(t, "VPN_PILOT_TEST_MARKER=1\nAPP_VERSION=from-dotenv\n")

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: path})
	b.withDotEnv()

	require.NoError(t, b.err)
	_, set := os.LookupEnv("VPN_PILOT_TEST_MARKER")
	assert.False(t, set)
}

func TestWithDotEnv_MissingExplicitFileIsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{DotEnvPath: "/nonexistent/.env"})
	b.withDotEnv()

	assert.Error(t, b.err)
}

func TestWithDotEnv_MissingDefaultFileIsSkipped(t *testing.T) {
	t.Chdir(t.TempDir())

	b := newConfigBuilder().withDotEnv()

	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	assert.Same(t, b, b.withJSON())

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesHighestPriorityPath verifies that a flag-provided path
// beats one coming from a later source.
func TestWithJSON_UsesHighestPriorityPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.Version = "from-flag-path"
	second := StructuredJSONConfig{}
	second.App.Version = "from-env-path"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-flag-path", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnvVars(t)

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "nordvpn", cfg.App.Binary)
	assert.Equal(t, "go-vpn-pilot", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8787", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Workers.StatusInterval)
	assert.Equal(t, "vpn-pilot.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_Priority(t *testing.T) {
	t.Chdir(t.TempDir())
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.Binary = "json-binary"
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	payload.App.LogFile = "json.log"
	jsonPath := writeTempJSONConfig(t, payload)

	dotEnvPath := writeTempDotEnv(t, "APP_BINARY=dotenv-binary\nAPP_VERSION=dotenv-version\nAPP_TOKEN_ISSUER=dotenv-issuer\n")

	t.Setenv("APP_BINARY", "env-binary")
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := GetStructuredConfig([]string{
		"-binary", "flag-binary",
		"-c", jsonPath,
		"-env-file", dotEnvPath,
	})
	require.NoError(t, err)

	assert.Equal(t, "flag-binary", cfg.App.Binary)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "dotenv-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "json.log", cfg.App.LogFile)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}
