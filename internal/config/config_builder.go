// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// configBuilder collects configuration layers and merges them in priority
// order: defaults, file, env, flags.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	env      *StructuredConfig
	flags    *StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{defaults: defaultConfig()}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, layer := range []*StructuredConfig{b.defaults, b.file, b.env, b.flags} {
		if layer == nil {
			continue
		}
		if err := mergo.Merge(config, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

// withDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading %s: %w", path, err))
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.env = envCfg
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flagsCfg
	return b
}

// withFile parses the config file named by the flags or env layer, flags
// taking precedence.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, layer := range []*StructuredConfig{b.env, b.flags} {
		if layer != nil && layer.ConfigFilePath != "" {
			path = layer.ConfigFilePath
		}
	}
	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.file = fileCfg
	return b
}
