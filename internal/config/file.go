// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the config file.
type StructuredFileConfig struct {
	App struct {
		Platform string `json:"platform" yaml:"platform"`
		LogLevel string `json:"log_level" yaml:"log_level"`
		LogFile  string `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Adapter struct {
		RemoteURL      string   `json:"remote_url" yaml:"remote_url"`
		WebOrigin      string   `json:"web_origin" yaml:"web_origin"`
		WebAPIPath     string   `json:"web_api_path" yaml:"web_api_path"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter" yaml:"adapter"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Session struct {
		DropExpired bool `json:"drop_expired" yaml:"drop_expired"`
	} `json:"session" yaml:"session"`
}

func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Platform: fileCfg.App.Platform,
			LogLevel: fileCfg.App.LogLevel,
			LogFile:  fileCfg.App.LogFile,
		},
		Adapter: Adapter{
			RemoteURL:      fileCfg.Adapter.RemoteURL,
			WebOrigin:      fileCfg.Adapter.WebOrigin,
			WebAPIPath:     fileCfg.Adapter.WebAPIPath,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Session: Session{DropExpired: fileCfg.Session.DropExpired},
	}, nil
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and YAML. Plain numbers are taken as nanoseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.parse(value)
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration: %w", err)
	}
	return d.parse(s)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) parse(s string) error {
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
