// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags.
//
// Flags:
//
//	-c/-config       config file path (JSON or YAML)
//	-platform        native or web
//	-u               backend base URL for the native platform
//	-web-origin      origin of the web shell
//	-web-api-path    proxy path on the web origin
//	-request-timeout request timeout (e.g. "30s")
//	-d               local database DSN
//	-log-level       trace, debug, info, warn or error
//	-log-file        log file path
//	-drop-expired-session discard an expired JWT at startup
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("pos-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfg StructuredConfig
	var requestTimeout time.Duration

	fs.StringVar(&cfg.ConfigFilePath, "c", "", "Config file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "Config file path (alias)")
	fs.StringVar(&cfg.App.Platform, "platform", "", "Platform: native or web")
	fs.StringVar(&cfg.Adapter.RemoteURL, "u", "", "Backend base URL")
	fs.StringVar(&cfg.Adapter.WebOrigin, "web-origin", "", "Web shell origin")
	fs.StringVar(&cfg.Adapter.WebAPIPath, "web-api-path", "", "API proxy path on the web origin")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Local database DSN")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.BoolVar(&cfg.Session.DropExpired, "drop-expired-session", false, "Discard an expired JWT at startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	cfg.Adapter.RequestTimeout = requestTimeout

	return &cfg, nil
}
