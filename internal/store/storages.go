// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
)

// MemoryDSN selects the in-process session repository.
const MemoryDSN = "memory"

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionRepository holds the persisted session entries.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. For [MemoryDSN]
// nothing touches the disk; otherwise the SQLite file at cfg.DB.DSN is
// opened (and created) and migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return &ClientStorages{SessionRepository: NewMemorySessionRepository()}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
