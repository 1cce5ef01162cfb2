// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── GetStructuredConfig ──────────────────────────────────────────────────────

func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, PlatformNative, cfg.App.Platform)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, DefaultRemoteURL, cfg.Adapter.RemoteURL)
	assert.Equal(t, "/api", cfg.Adapter.WebAPIPath)
	assert.Equal(t, "pos-client.db", cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.False(t, cfg.Session.DropExpired)
}

func TestGetStructuredConfig_DropExpiredSession(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		path := writeTempConfig(t, "client.yml", "session:\n  drop_expired: true\n")
		cfg, err := GetStructuredConfig([]string{"-c", path})
		require.NoError(t, err)
		assert.True(t, cfg.Session.DropExpired)
	})

	t.Run("env", func(t *testing.T) {
		t.Setenv("POS_SESSION_DROP_EXPIRED", "true")
		cfg, err := GetStructuredConfig(nil)
		require.NoError(t, err)
		assert.True(t, cfg.Session.DropExpired)
	})

	t.Run("flag", func(t *testing.T) {
		cfg, err := GetStructuredConfig([]string{"-drop-expired-session"})
		require.NoError(t, err)
		assert.True(t, cfg.Session.DropExpired)
	})
}

func TestGetStructuredConfig_FileOverridesDefaults(t *testing.T) {
	path := writeTempConfig(t, "client.json", `{
		"app": {"log_level": "debug"},
		"adapter": {"remote_url": "http://file.local/api", "request_timeout": "15s"},
		"storage": {"db": {"dsn": "file.db"}}
	}`)

	cfg, err := GetStructuredConfig([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "http://file.local/api", cfg.Adapter.RemoteURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
	// untouched by the file
	assert.Equal(t, PlatformNative, cfg.App.Platform)
}

func TestGetStructuredConfig_EnvOverridesFile(t *testing.T) {
	path := writeTempConfig(t, "client.yaml", `
adapter:
  remote_url: http://file.local/api
storage:
  db:
    dsn: file.db
`)
	t.Setenv("POS_CONFIG", path)
	t.Setenv("POS_ADAPTER_REMOTE_URL", "http://env.local/api")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "http://env.local/api", cfg.Adapter.RemoteURL)
	assert.Equal(t, "file.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("POS_APP_PLATFORM", "native")
	t.Setenv("POS_STORAGE_DB_DSN", "env.db")

	cfg, err := GetStructuredConfig([]string{"-platform", "web", "-d", "flag.db", "-request-timeout", "2s"})
	require.NoError(t, err)

	assert.Equal(t, PlatformWeb, cfg.App.Platform)
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetStructuredConfig_FlagFileWinsOverEnvFile(t *testing.T) {
	envFile := writeTempConfig(t, "env.json", `{"storage": {"db": {"dsn": "from-env-file.db"}}}`)
	flagFile := writeTempConfig(t, "flag.json", `{"storage": {"db": {"dsn": "from-flag-file.db"}}}`)
	t.Setenv("POS_CONFIG", envFile)

	cfg, err := GetStructuredConfig([]string{"-config", flagFile})
	require.NoError(t, err)

	assert.Equal(t, "from-flag-file.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_Errors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-nope"})
		assert.Error(t, err)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := GetStructuredConfig([]string{"-c", filepath.Join(t.TempDir(), "absent.json")})
		assert.Error(t, err)
	})

	t.Run("malformed json file", func(t *testing.T) {
		path := writeTempConfig(t, "bad.json", `{"app": `)
		_, err := GetStructuredConfig([]string{"-c", path})
		assert.Error(t, err)
	})

	t.Run("malformed env duration", func(t *testing.T) {
		t.Setenv("POS_ADAPTER_REQUEST_TIMEOUT", "soon")
		_, err := GetStructuredConfig(nil)
		assert.Error(t, err)
	})
}

// ── Duration ─────────────────────────────────────────────────────────────────

func TestDuration_Decoding(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    time.Duration
		wantErr bool
	}{
		{name: "json string", file: "a.json", content: `{"adapter": {"request_timeout": "1m"}}`, want: time.Minute},
		{name: "json number", file: "b.json", content: `{"adapter": {"request_timeout": 1000}}`, want: 1000},
		{name: "json bad string", file: "c.json", content: `{"adapter": {"request_timeout": "abc"}}`, wantErr: true},
		{name: "json bool", file: "d.json", content: `{"adapter": {"request_timeout": true}}`, wantErr: true},
		{name: "yaml string", file: "e.yml", content: "adapter:\n  request_timeout: 45s\n", want: 45 * time.Second},
		{name: "yaml number", file: "f.yaml", content: "adapter:\n  request_timeout: 7\n", want: 7},
		{name: "yaml bad string", file: "g.yaml", content: "adapter:\n  request_timeout: later\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseFile(writeTempConfig(t, tt.file, tt.content))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Adapter.RequestTimeout)
		})
	}
}
