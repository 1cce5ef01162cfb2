// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the POS client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Config file (JSON, or YAML when the path ends in .yaml/.yml)
//  3. Environment variables, after loading an optional .env file
//  4. Command-line flags
//
// The main entry point is [GetClientConfig], which also resolves the backend
// base URL for the selected platform exactly once.
package config
