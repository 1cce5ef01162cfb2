// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client session in a local key/value table.
//
// Two [SessionRepository] implementations exist: an SQLite one (squirrel
// queries over the goose-managed session_entries table) and an in-process
// map used when the configured DSN is "memory".
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository is a string key/value store for session artifacts.
type SessionRepository interface {
	// Get returns the value under key or [ErrSessionKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes all keys as one transaction. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
}
