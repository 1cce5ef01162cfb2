// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/internal/mock"
	"github.com/esteh-pos/pos-client/internal/session"
	"github.com/esteh-pos/pos-client/internal/store"
	"github.com/esteh-pos/pos-client/internal/validators"
	"github.com/esteh-pos/pos-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func newTestResource(gw adapter.Gateway) resourceClient {
	return resourceClient{gw: gw, validator: validators.NewPayloadValidator()}
}

func newAuthService(t *testing.T) (AuthService, *mock.MockGateway, *mock.MockSessionManager) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	sess := mock.NewMockSessionManager(ctrl)
	return NewClientAuthService(newTestResource(gw), sess), gw, sess
}

var loginReq = models.LoginRequest{Username: "kasir1", Password: "secret"}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_PersistsTokenAndUser(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	gw.EXPECT().
		Do(ctx, "/login", adapter.RequestOptions{Method: http.MethodPost, Body: loginReq}).
		Return(json.RawMessage(`{"access_token":"abc123","user":{"id":1,"username":"kasir1","role":"Karyawan"}}`), nil)
	sess.EXPECT().SaveToken(ctx, "abc123")
	sess.EXPECT().SaveUser(ctx, models.User{ID: 1, Username: "kasir1", Role: models.RoleKaryawan})

	resp, err := svc.Login(ctx, loginReq)

	require.NoError(t, err)
	assert.Equal(t, "abc123", resp.BearerToken())
	assert.Equal(t, models.RoleKaryawan, resp.User.Role)
}

func TestLogin_AcceptsLegacyTokenField(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, "/login", gomock.Any()).
		Return(json.RawMessage(`{"token":"legacy","user":{"id":2,"username":"gudang1","role":"gudang"}}`), nil)
	sess.EXPECT().SaveToken(ctx, "legacy")
	sess.EXPECT().SaveUser(ctx, gomock.Any())

	_, err := svc.Login(ctx, loginReq)
	require.NoError(t, err)
}

func TestLogin_UnknownRoleClearsSession(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	gw.EXPECT().Do(ctx, "/login", gomock.Any()).
		Return(json.RawMessage(`{"access_token":"abc","user":{"id":3,"username":"boss","role":"superadmin"}}`), nil)
	sess.EXPECT().RemoveToken(ctx)

	_, err := svc.Login(ctx, loginReq)

	require.ErrorIs(t, err, ErrUnknownRole)
	assert.Contains(t, err.Error(), "superadmin")
}

func TestLogin_IncompleteResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no token", body: `{"user":{"id":1,"username":"kasir1","role":"karyawan"}}`},
		{name: "no user", body: `{"access_token":"abc"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw, sess := newAuthService(t)
			ctx := context.Background()

			gw.EXPECT().Do(ctx, "/login", gomock.Any()).Return(json.RawMessage(tt.body), nil)
			sess.EXPECT().RemoveToken(ctx)

			_, err := svc.Login(ctx, loginReq)
			assert.ErrorIs(t, err, ErrIncompleteLogin)
		})
	}
}

func TestLogin_GatewayErrorIsReturnedAsIs(t *testing.T) {
	svc, gw, _ := newAuthService(t)
	ctx := context.Background()

	gwErr := &adapter.RequestError{Kind: adapter.ErrHTTP, Status: 401, Message: "Invalid credentials"}
	gw.EXPECT().Do(ctx, "/login", gomock.Any()).Return(nil, gwErr)

	_, err := svc.Login(ctx, loginReq)

	require.ErrorIs(t, err, adapter.ErrHTTP)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestLogin_InvalidPayloadSkipsNetwork(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), models.LoginRequest{Username: "kasir1"})

	require.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidPayload)
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_AcceptsBothShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "wrapped", body: `{"user":{"id":7,"username":"owner1","role":"OWNER"}}`},
		{name: "bare", body: `{"id":7,"username":"owner1","role":"owner"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gw, sess := newAuthService(t)
			ctx := context.Background()
			want := models.User{ID: 7, Username: "owner1", Role: models.RoleOwner}

			sess.EXPECT().GetToken(ctx).Return("abc", true)
			gw.EXPECT().Do(ctx, "/me", adapter.RequestOptions{Method: http.MethodGet}).
				Return(json.RawMessage(tt.body), nil)
			sess.EXPECT().SaveUser(ctx, want)

			got, err := svc.Me(ctx)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMe_WithoutSession(t *testing.T) {
	svc, _, sess := newAuthService(t)
	ctx := context.Background()

	sess.EXPECT().GetToken(ctx).Return("", false)

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestMe_UnexpectedProfile(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	sess.EXPECT().GetToken(ctx).Return("abc", true)
	gw.EXPECT().Do(ctx, "/me", gomock.Any()).Return(json.RawMessage(`{"message":"ok"}`), nil)

	_, err := svc.Me(ctx)
	assert.ErrorIs(t, err, ErrUnexpectedProfile)
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_ClearsSession(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().Do(ctx, "/logout", adapter.RequestOptions{Method: http.MethodPost}).
			Return(json.RawMessage(`{"message":"Logged out"}`), nil),
		sess.EXPECT().RemoveToken(ctx),
	)

	assert.NoError(t, svc.Logout(ctx))
}

func TestLogout_ClearsSessionEvenWhenRequestFails(t *testing.T) {
	svc, gw, sess := newAuthService(t)
	ctx := context.Background()

	netErr := &adapter.RequestError{Kind: adapter.ErrNetwork, Message: "Cannot connect to the server."}
	gw.EXPECT().Do(ctx, "/logout", gomock.Any()).Return(nil, netErr)
	sess.EXPECT().RemoveToken(ctx)

	err := svc.Logout(ctx)
	assert.True(t, errors.Is(err, adapter.ErrNetwork))
}

// ── RestoreSession ───────────────────────────────────────────────────────────

func TestRestoreSession(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		svc, _, sess := newAuthService(t)
		ctx := context.Background()
		stored := models.Session{Token: "abc", User: models.User{ID: 1, Username: "g", Role: "Gudang"}}

		sess.EXPECT().Current(ctx).Return(stored, true)

		got, ok := svc.RestoreSession(ctx)
		require.True(t, ok)
		assert.Equal(t, models.RoleGudang, got.User.Role)
	})

	t.Run("none", func(t *testing.T) {
		svc, _, sess := newAuthService(t)
		ctx := context.Background()

		sess.EXPECT().Current(ctx).Return(models.Session{}, false)

		_, ok := svc.RestoreSession(ctx)
		assert.False(t, ok)
	})

	t.Run("unknown role", func(t *testing.T) {
		svc, _, sess := newAuthService(t)
		ctx := context.Background()

		sess.EXPECT().Current(ctx).Return(models.Session{Token: "abc", User: models.User{ID: 1, Role: "admin"}}, true)
		sess.EXPECT().RemoveToken(ctx)

		_, ok := svc.RestoreSession(ctx)
		assert.False(t, ok)
	})
}

// ── end to end ───────────────────────────────────────────────────────────────

func TestLogin_ThenAuthenticatedCall(t *testing.T) {
	seenAuth := make(chan []string, 1)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"access_token":"abc123","user":{"id":1,"username":"kasir1","role":"karyawan"}}`)
		})
		r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"message":"Logged out"}`)
		})
		r.Get("/produk", func(w http.ResponseWriter, r *http.Request) {
			seenAuth <- r.Header.Values("Authorization")
			_, _ = io.WriteString(w, `[{"id":1,"nama":"Es Teh","harga":5000}]`)
		})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx := context.Background()
	repo := store.NewMemorySessionRepository()
	sess := session.NewStore(repo, logger.Nop())

	gw, err := adapter.NewHTTPGateway(config.ClientAdapter{BaseURL: srv.URL + "/api"}, sess, nil, logger.Nop())
	require.NoError(t, err)
	services := NewClientServices(gw, sess)

	_, err = services.AuthService.Login(ctx, loginReq)
	require.NoError(t, err)

	token, err := repo.Get(ctx, session.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	userJSON, err := repo.Get(ctx, session.UserKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"kasir1","role":"karyawan"}`, userJSON)

	products, err := services.KaryawanService.ListProduk(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, []string{"Bearer abc123"}, <-seenAuth)

	require.NoError(t, services.AuthService.Logout(ctx))
	_, ok := sess.GetToken(ctx)
	assert.False(t, ok)
}
