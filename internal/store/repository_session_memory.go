// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
)

type memorySessionRepository struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemorySessionRepository returns a [SessionRepository] that lives only
// as long as the process.
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{entries: make(map[string]string)}
}

func (m *memorySessionRepository) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.entries[key]
	if !ok {
		return "", ErrSessionKeyNotFound
	}
	return value, nil
}

func (m *memorySessionRepository) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = value
	return nil
}

func (m *memorySessionRepository) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, key := range keys {
		delete(m.entries, key)
	}
	return nil
}
