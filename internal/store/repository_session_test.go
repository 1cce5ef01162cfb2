// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newMockSessionRepository(t *testing.T) (*sessionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := NewSessionRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()).(*sessionRepository)
	repo.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return repo, mock
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestSessionRepository_Get(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM session_entries WHERE key = ?")).
		WithArgs("@auth_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("abc123"))

	got, err := repo.Get(context.Background(), "@auth_token")

	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Get_NotFound(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectQuery("SELECT value FROM session_entries").
		WithArgs("@user_data").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "@user_data")

	assert.ErrorIs(t, err, ErrSessionKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Get_DBError(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectQuery("SELECT value FROM session_entries").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.Get(context.Background(), "@auth_token")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrSessionKeyNotFound)
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestSessionRepository_Set(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO session_entries (key,value,updated_at) VALUES (?,?,?) ON CONFLICT(key) DO UPDATE")).
		WithArgs("@auth_token", "abc123", repo.now()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), "@auth_token", "abc123")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Set_DBError(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectExec("INSERT INTO session_entries").
		WillReturnError(errors.New("database is locked"))

	err := repo.Set(context.Background(), "@auth_token", "abc123")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestSessionRepository_Delete_SingleTransaction(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_entries WHERE key IN (?,?)")).
		WithArgs("@auth_token", "@user_data").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), "@auth_token", "@user_data")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_RollsBackOnError(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM session_entries").
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), "@auth_token", "@user_data")

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Delete_BeginError(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	mock.ExpectBegin().WillReturnError(errors.New("no tx"))

	err := repo.Delete(context.Background(), "@auth_token")

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSessionRepository_Delete_NoKeys(t *testing.T) {
	repo, mock := newMockSessionRepository(t)

	require.NoError(t, repo.Delete(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── in-memory ────────────────────────────────────────────────────────────────

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository()

	_, err := repo.Get(ctx, "@auth_token")
	assert.ErrorIs(t, err, ErrSessionKeyNotFound)

	require.NoError(t, repo.Set(ctx, "@auth_token", "a"))
	require.NoError(t, repo.Set(ctx, "@auth_token", "b"))
	require.NoError(t, repo.Set(ctx, "@user_data", "{}"))

	got, err := repo.Get(ctx, "@auth_token")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	require.NoError(t, repo.Delete(ctx, "@auth_token", "@user_data", "@absent"))
	_, err = repo.Get(ctx, "@user_data")
	assert.ErrorIs(t, err, ErrSessionKeyNotFound)
}

// ── storages ─────────────────────────────────────────────────────────────────

func TestNewClientStorages_Memory(t *testing.T) {
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.IsType(t, &memorySessionRepository{}, s.SessionRepository)
}

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "pos.db")

	s, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	repo := s.SessionRepository
	require.NoError(t, repo.Set(ctx, "@auth_token", "abc123"))
	require.NoError(t, repo.Set(ctx, "@auth_token", "def456"))
	require.NoError(t, repo.Set(ctx, "@user_data", `{"id":1}`))

	got, err := repo.Get(ctx, "@auth_token")
	require.NoError(t, err)
	assert.Equal(t, "def456", got)
	require.NoError(t, s.Close())

	// reopening sees the persisted entries
	s, err = NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	got, err = s.SessionRepository.Get(ctx, "@user_data")
	require.NoError(t, err)
	assert.Equal(t, `{"id":1}`, got)

	require.NoError(t, s.SessionRepository.Delete(ctx, "@auth_token", "@user_data"))
	_, err = s.SessionRepository.Get(ctx, "@auth_token")
	assert.ErrorIs(t, err, ErrSessionKeyNotFound)
}
