// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Platform is "native" or "web".
	Platform string `validate:"required,oneof=native web"`
	// LogLevel is the minimum zerolog level.
	LogLevel string `validate:"required,oneof=trace debug info warn error"`
	// LogFile is the log destination; empty selects the default location.
	LogFile string
}

// ClientAdapter holds settings used by the API gateway.
type ClientAdapter struct {
	// BaseURL is the resolved backend base URL every endpoint is appended to.
	BaseURL string `validate:"required,url"`
	// RequestTimeout bounds a single request when non-zero.
	RequestTimeout time.Duration `validate:"gte=0"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path, or "memory".
	DSN string `validate:"required"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSession holds session lifecycle settings.
type ClientSession struct {
	// DropExpired discards an expired JWT when the session is loaded.
	DropExpired bool
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the gateway base URL and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Session contains session lifecycle settings.
	Session ClientSession
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
//
// The backend base URL is resolved here once via [ResolveBaseURL] and never
// recomputed afterwards.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	platform := strings.ToLower(strings.TrimSpace(cfg.App.Platform))
	baseURL, err := ResolveBaseURL(platform, cfg.Adapter)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Platform: platform,
			LogLevel: strings.ToLower(cfg.App.LogLevel),
			LogFile:  cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Session: ClientSession{
			DropExpired: cfg.Session.DropExpired,
		},
	}

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}

// ResolveBaseURL picks the backend base URL for platform. The web platform
// uses the same-origin proxy (WebOrigin + WebAPIPath); every other platform
// uses RemoteURL. Trailing slashes are trimmed.
func ResolveBaseURL(platform string, adapter Adapter) (string, error) {
	if platform != PlatformWeb {
		return strings.TrimRight(adapter.RemoteURL, "/"), nil
	}

	origin := strings.TrimRight(strings.TrimSpace(adapter.WebOrigin), "/")
	if origin == "" {
		return "", fmt.Errorf("%w: web platform requires a web origin", ErrInvalidAdapterConfigs)
	}
	if u, err := url.Parse(origin); err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: malformed web origin %q", ErrInvalidAdapterConfigs, origin)
	}

	apiPath := strings.Trim(adapter.WebAPIPath, "/")
	if apiPath == "" {
		return origin, nil
	}
	return origin + "/" + apiPath, nil
}
