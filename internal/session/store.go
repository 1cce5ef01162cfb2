// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the authenticated session of the client: the bearer
// token and the cached user profile.
//
// A [Store] moves through init (Load from the repository), active (read on
// every request) and cleared (RemoveToken). Storage failures never escape
// it: they are logged and the store behaves as if no session existed.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/internal/store"
	"github.com/esteh-pos/pos-client/internal/utils"
	"github.com/esteh-pos/pos-client/models"
)

// Persisted keys of the session artifacts.
const (
	TokenKey = "@auth_token"
	UserKey  = "@user_data"
)

// Store is the single owner of session state. It is safe for concurrent use;
// concurrent writers follow last-writer-wins.
type Store struct {
	repo        store.SessionRepository
	now         func() time.Time
	dropExpired bool
	logger      *logger.Logger

	mu     sync.RWMutex
	loaded bool
	token  string
	user   *models.User
}

// Option configures a [Store].
type Option func(*Store)

// WithExpiredTokenDrop makes Load discard a token that is a JWT whose exp
// claim is in the past, together with the user.
func WithExpiredTokenDrop() Option {
	return func(s *Store) { s.dropExpired = true }
}

// NewStore returns a Store over repo. Nothing is read until Load or the
// first accessor call.
func NewStore(repo store.SessionRepository, log *logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{repo: repo, now: time.Now, logger: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the persisted session into memory and reports the loaded
// session and whether it is complete. Tokens are kept as stored unless the
// store was built [WithExpiredTokenDrop].
func (s *Store) Load(ctx context.Context) (models.Session, bool) {
	token := s.read(ctx, TokenKey)
	var user *models.User
	if raw := s.read(ctx, UserKey); raw != "" {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			s.logger.Err(err).Str("func", "session.Load").Msg("error decoding cached user")
		} else {
			user = &u
		}
	}

	if s.dropExpired && token != "" && utils.TokenExpired(token, s.now()) {
		s.logger.Info().Str("func", "session.Load").Msg("stored token expired, clearing session")
		s.RemoveToken(ctx)
		return models.Session{}, false
	}

	s.mu.Lock()
	s.loaded = true
	s.token = token
	s.user = user
	s.mu.Unlock()

	return s.Current(ctx)
}

func (s *Store) read(ctx context.Context, key string) string {
	value, err := s.repo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, store.ErrSessionKeyNotFound) {
			s.logger.Err(err).Str("func", "session.read").Str("key", key).Msg("error reading session entry")
		}
		return ""
	}
	return value
}

func (s *Store) ensureLoaded(ctx context.Context) {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()

	if !loaded {
		s.Load(ctx)
	}
}

// GetToken returns the bearer token, if any. It satisfies the gateway's
// token source.
func (s *Store) GetToken(ctx context.Context) (string, bool) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SaveToken stores token. Persistence failures are logged; the in-memory
// token is updated regardless.
func (s *Store) SaveToken(ctx context.Context, token string) {
	s.mu.Lock()
	s.loaded = true
	s.token = token
	s.mu.Unlock()

	if err := s.repo.Set(ctx, TokenKey, token); err != nil {
		s.logger.Err(err).Str("func", "session.SaveToken").Msg("error saving token")
	}
}

// SaveUser caches user as the profile of the current session.
func (s *Store) SaveUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	s.loaded = true
	s.user = &user
	s.mu.Unlock()

	payload, err := json.Marshal(user)
	if err != nil {
		s.logger.Err(err).Str("func", "session.SaveUser").Msg("error encoding user")
		return
	}
	if err = s.repo.Set(ctx, UserKey, string(payload)); err != nil {
		s.logger.Err(err).Str("func", "session.SaveUser").Msg("error saving user")
	}
}

// Save stores the token and the user of sess.
func (s *Store) Save(ctx context.Context, sess models.Session) {
	s.SaveToken(ctx, sess.Token)
	s.SaveUser(ctx, sess.User)
}

// User returns the cached profile, if any.
func (s *Store) User(ctx context.Context) (models.User, bool) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Current returns the session when both the token and the user are known.
func (s *Store) Current(ctx context.Context) (models.Session, bool) {
	s.ensureLoaded(ctx)

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.user == nil {
		return models.Session{}, false
	}
	return models.Session{Token: s.token, User: *s.user}, true
}

// RemoveToken ends the session: the token and the cached user are removed
// from memory and, in one repository call, from persistent storage.
func (s *Store) RemoveToken(ctx context.Context) {
	s.mu.Lock()
	s.loaded = true
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx, TokenKey, UserKey); err != nil {
		s.logger.Err(err).Str("func", "session.RemoveToken").Msg("error removing session")
	}
}
