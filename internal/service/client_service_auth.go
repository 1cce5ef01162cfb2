// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/models"
)

type clientAuthService struct {
	resourceClient
	session SessionManager
}

// NewClientAuthService returns the [AuthService] over res and session.
func NewClientAuthService(res resourceClient, session SessionManager) AuthService {
	return &clientAuthService{resourceClient: res, session: session}
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	resp, err := sendResource[models.LoginResponse](ctx, a.resourceClient, http.MethodPost, "/login", req)
	if err != nil {
		return models.LoginResponse{}, err
	}

	token := resp.BearerToken()
	if token == "" || resp.User == nil {
		a.session.RemoveToken(ctx)
		return resp, ErrIncompleteLogin
	}

	user := *resp.User
	user.Role = user.Role.Normalize()
	if !user.Role.Known() {
		log.Warn().
			Str("func", "clientAuthService.Login").
			Str("role", string(resp.User.Role)).
			Msg("login with unsupported role, clearing session")
		a.session.RemoveToken(ctx)
		return resp, fmt.Errorf("%w: %q", ErrUnknownRole, resp.User.Role)
	}

	a.session.SaveToken(ctx, token)
	a.session.SaveUser(ctx, user)
	resp.User = &user

	log.Info().
		Str("func", "clientAuthService.Login").
		Int64("user_id", user.ID).
		Str("role", string(user.Role)).
		Msg("signed in")

	return resp, nil
}

// meResponse accepts both a bare user and a {"user": {...}} wrapper.
type meResponse struct {
	User *models.User `json:"user"`
}

func (a *clientAuthService) Me(ctx context.Context) (models.User, error) {
	if _, ok := a.session.GetToken(ctx); !ok {
		return models.User{}, ErrNotAuthenticated
	}

	raw, err := getResource[json.RawMessage](ctx, a.resourceClient, "/me")
	if err != nil {
		return models.User{}, err
	}

	var wrapped meResponse
	var user models.User
	if err = json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		user = *wrapped.User
	} else if err = json.Unmarshal(raw, &user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrUnexpectedProfile, err)
	}
	if user.ID == 0 {
		return models.User{}, ErrUnexpectedProfile
	}

	user.Role = user.Role.Normalize()
	a.session.SaveUser(ctx, user)
	return user, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	_, err := a.gw.Do(ctx, "/logout", adapter.RequestOptions{Method: http.MethodPost})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "clientAuthService.Logout").
			Msg("logout request failed, clearing local session anyway")
	}

	a.session.RemoveToken(ctx)
	return err
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, bool) {
	sess, ok := a.session.Current(ctx)
	if !ok {
		return models.Session{}, false
	}

	if !sess.User.Role.Known() {
		a.session.RemoveToken(ctx)
		return models.Session{}, false
	}

	sess.User.Role = sess.User.Role.Normalize()
	return sess, true
}
