// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/esteh-pos/pos-client/internal/logger"
)

const sessionEntriesTable = "session_entries"

type sessionRepository struct {
	*DB
	builder sq.StatementBuilderType
	now     func() time.Time
	logger  *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, log *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		now:     time.Now,
		logger:  log,
	}
}

func (s *sessionRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Select("value").
		From(sessionEntriesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSessionKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Get").
			Str("key", key).
			Msg("failed to query session entry")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sessionRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Insert(sessionEntriesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, s.now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Set").
			Str("key", key).
			Msg("failed to upsert session entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := s.builder.
		Delete(sessionEntriesTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sessionRepository.Delete").
			Strs("keys", keys).
			Msg("failed to delete session entries")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "sessionRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
