// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Platform names accepted by App.Platform.
const (
	// PlatformNative talks to the remote backend directly.
	PlatformNative = "native"
	// PlatformWeb goes through the same-origin /api proxy of the web shell.
	PlatformWeb = "web"
)

// DefaultRemoteURL is the production backend used by native builds.
const DefaultRemoteURL = "https://esteh-backend-production.up.railway.app/api"

// envPrefix is prepended to every environment variable name.
const envPrefix = "POS_"

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, an optional config file, environment variables and
// command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds settings of the backend API gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings of the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Session holds settings of the session lifecycle.
	Session Session `envPrefix:"SESSION_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Env: POS_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Platform selects how the backend is reached: "native" or "web".
	// Env: POS_APP_PLATFORM
	Platform string `env:"PLATFORM"`

	// LogLevel is one of trace, debug, info, warn, error.
	// Env: POS_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the client writes its logs. Empty means a "logs" file
	// next to the executable.
	// Env: POS_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings of the backend API gateway.
type Adapter struct {
	// RemoteURL is the backend base URL used by the native platform.
	// Env: POS_ADAPTER_REMOTE_URL
	RemoteURL string `env:"REMOTE_URL"`

	// WebOrigin is the origin serving the web shell (e.g.
	// "http://localhost:8081"). Required for the web platform.
	// Env: POS_ADAPTER_WEB_ORIGIN
	WebOrigin string `env:"WEB_ORIGIN"`

	// WebAPIPath is the proxy path on WebOrigin that forwards to the backend.
	// Env: POS_ADAPTER_WEB_API_PATH
	WebAPIPath string `env:"WEB_API_PATH"`

	// RequestTimeout bounds a single request. Zero leaves requests bounded
	// only by the caller's context.
	// Env: POS_ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the local persistence.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local database settings.
type DB struct {
	// DSN is the SQLite file path. "memory" keeps the session in process
	// memory only.
	// Env: POS_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Session holds settings of the session lifecycle.
type Session struct {
	// DropExpired discards a persisted token at startup when it is a JWT
	// whose exp claim has passed. Off by default: a session otherwise ends
	// only on logout or on a rejected login.
	// Env: POS_SESSION_DROP_EXPIRED
	DropExpired bool `env:"DROP_EXPIRED"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Platform: PlatformNative,
			LogLevel: "info",
		},
		Adapter: Adapter{
			RemoteURL:  DefaultRemoteURL,
			WebAPIPath: "/api",
		},
		Storage: Storage{
			DB: DB{DSN: "pos-client.db"},
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources.
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(args).
		withFile().
		build()
}
