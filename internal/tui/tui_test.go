// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/mock"
	"github.com/esteh-pos/pos-client/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
)

var kasir = models.User{ID: 1, Username: "kasir1", Role: models.RoleKaryawan}

func stubClipboard(t *testing.T, write func(string) error) {
	t.Helper()
	orig := writeClipboard
	writeClipboard = write
	t.Cleanup(func() { writeClipboard = orig })
}

func navigation(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	require.NotNil(t, cmd)
	nav, ok := cmd().(NavigateTo)
	require.True(t, ok, "expected a NavigateTo message")
	return nav
}

// ── splash ───────────────────────────────────────────────────────────────────

func TestSplash_RoutesBySession(t *testing.T) {
	ctx := context.Background()

	t.Run("restored", func(t *testing.T) {
		auth := mock.NewMockAuthService(gomock.NewController(t))
		sess := models.Session{Token: "abc123", User: kasir}
		auth.EXPECT().RestoreSession(ctx).Return(sess, true)

		m := NewSplashModel(ctx, auth, models.NewAppBuildInfo("1.0.0", "", ""))
		_, cmd := m.Update(m.Init()())

		nav := navigation(t, cmd)
		assert.Equal(t, pageHome, nav.Page)
		assert.Equal(t, sessionStartedMsg{session: sess}, nav.Payload)
	})

	t.Run("no session", func(t *testing.T) {
		auth := mock.NewMockAuthService(gomock.NewController(t))
		auth.EXPECT().RestoreSession(ctx).Return(models.Session{}, false)

		m := NewSplashModel(ctx, auth, models.NewAppBuildInfo("1.0.0", "", ""))
		_, cmd := m.Update(m.Init()())

		assert.Equal(t, pageLogin, navigation(t, cmd).Page)
	})
}

// ── login ────────────────────────────────────────────────────────────────────

func TestLogin_RequiresBothFields(t *testing.T) {
	auth := mock.NewMockAuthService(gomock.NewController(t))
	m := NewLoginModel(context.Background(), auth)
	m.inputs[0].SetValue("kasir1")

	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Username and password are required")
}

func TestLogin_SuccessOpensHome(t *testing.T) {
	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	auth.EXPECT().
		Login(ctx, models.LoginRequest{Username: "kasir1", Password: "secret"}).
		Return(models.LoginResponse{AccessToken: "abc123", User: &kasir}, nil)

	m := NewLoginModel(ctx, auth)
	m.inputs[0].SetValue(" kasir1 ")
	m.inputs[1].SetValue("secret")

	_, cmd := m.Update(enterKey)
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)

	_, cmd = m.Update(cmd())

	nav := navigation(t, cmd)
	assert.Equal(t, pageHome, nav.Page)
	assert.Equal(t, sessionStartedMsg{session: models.Session{Token: "abc123", User: kasir}}, nav.Payload)
	assert.Empty(t, m.inputs[1].Value())
}

func TestLogin_ErrorOverlayCanBeCopied(t *testing.T) {
	var copied string
	stubClipboard(t, func(text string) error {
		copied = text
		return nil
	})

	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	guidance := &adapter.RequestError{
		Kind:    adapter.ErrNetwork,
		Message: "Cannot connect to the server.\n- Make sure the backend server is running.",
	}
	auth.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, guidance)

	m := NewLoginModel(ctx, auth)
	m.inputs[0].SetValue("kasir1")
	m.inputs[1].SetValue("secret")

	_, cmd := m.Update(enterKey)
	m.Update(cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Make sure the backend server is running.")

	_, cmd = m.Update(runes("c"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, guidance.Message, copied)
	assert.Contains(t, m.View(), "copied to clipboard")

	m.Update(escKey)
	assert.Nil(t, m.overlay)
	assert.Contains(t, m.View(), "SIGN IN")
}

func TestLogin_CopyFailureIsShown(t *testing.T) {
	stubClipboard(t, func(string) error { return errors.New("no clipboard utility") })

	m := NewLoginModel(context.Background(), mock.NewMockAuthService(gomock.NewController(t)))
	m.Update(LoginResult{Err: errors.New("Invalid credentials")})

	_, cmd := m.Update(runes("c"))
	m.Update(cmd())

	assert.Contains(t, m.View(), "copy failed")
}

func TestLogin_ShowsLogoutNotice(t *testing.T) {
	m := NewLoginModel(context.Background(), mock.NewMockAuthService(gomock.NewController(t)))

	m.Update(loggedOutMsg{err: errors.New("HTTP 500: Internal Server Error")})

	assert.Contains(t, m.View(), "The server was not notified: HTTP 500")
}

// ── home ─────────────────────────────────────────────────────────────────────

func TestHome_ShowsSession(t *testing.T) {
	outletID := int64(3)
	user := kasir
	user.OutletID = &outletID

	m := NewHomeModel(context.Background(), mock.NewMockAuthService(gomock.NewController(t)))
	m.Update(sessionStartedMsg{session: models.Session{Token: "abc123", User: user}})

	view := m.View()
	assert.Contains(t, view, "Signed in as kasir1")
	assert.Contains(t, view, "Cashier (karyawan)")
	assert.Contains(t, view, "#3")
}

func TestHome_RefreshProfile(t *testing.T) {
	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	refreshed := models.User{ID: 1, Username: "kasir1", Role: models.RoleKaryawan, Outlet: &models.Outlet{ID: 3, Nama: "Outlet Pusat"}}
	auth.EXPECT().Me(ctx).Return(refreshed, nil)

	m := NewHomeModel(ctx, auth)
	m.Update(sessionStartedMsg{session: models.Session{Token: "abc123", User: kasir}})

	_, cmd := m.Update(runes("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	assert.Equal(t, refreshed, m.session.User)
	assert.Contains(t, m.View(), "Outlet Pusat")
}

func TestHome_RefreshErrorOpensOverlay(t *testing.T) {
	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	auth.EXPECT().Me(ctx).Return(models.User{}, errors.New("Unauthenticated."))

	m := NewHomeModel(ctx, auth)
	_, cmd := m.Update(runes("r"))
	m.Update(cmd())

	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Unauthenticated.")

	m.Update(enterKey)
	assert.Nil(t, m.overlay)
}

func TestHome_LogoutReturnsToLogin(t *testing.T) {
	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	auth.EXPECT().Logout(ctx).Return(nil)

	m := NewHomeModel(ctx, auth)
	m.Update(sessionStartedMsg{session: models.Session{Token: "abc123", User: kasir}})

	_, cmd := m.Update(runes("l"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())

	nav := navigation(t, cmd)
	assert.Equal(t, pageLogin, nav.Page)
	assert.Equal(t, loggedOutMsg{}, nav.Payload)
	assert.Equal(t, models.Session{}, m.session)
}

// ── root ─────────────────────────────────────────────────────────────────────

func TestRoot_NavigationAndGlobalKeys(t *testing.T) {
	ctx := context.Background()
	auth := mock.NewMockAuthService(gomock.NewController(t))
	home := NewHomeModel(ctx, auth)
	login := NewLoginModel(ctx, auth)

	root := NewRootModel(map[string]tea.Model{pageLogin: login, pageHome: home}, pageLogin, "ABOUT build")

	// v is typed into the login form, not intercepted.
	updated, _ := root.Update(runes("v"))
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)

	sess := models.Session{Token: "abc123", User: kasir}
	updated, cmd := root.Update(NavigateTo{Page: pageHome, Payload: sessionStartedMsg{session: sess}})
	root = updated.(RootModel)
	require.NotNil(t, cmd)
	updated, _ = root.Update(cmd())
	root = updated.(RootModel)
	assert.Equal(t, sess, home.session)

	updated, _ = root.Update(runes("v"))
	root = updated.(RootModel)
	assert.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "ABOUT build")

	updated, _ = root.Update(escKey)
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)

	updated, cmd = root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	root = updated.(RootModel)
	assert.True(t, root.quitByUser)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderBuildInfoWindow(t *testing.T) {
	ctx := context.Background()
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().BuildInfo(ctx).Return(models.NewAppBuildInfo("1.4.0", "2026-10-01", ""))
	appInfo.EXPECT().Platform(ctx).Return("native")
	appInfo.EXPECT().BackendURL(ctx).Return("https://esteh-backend-production.up.railway.app/api")

	view := renderBuildInfoWindow(ctx, appInfo)

	assert.Contains(t, view, "1.4.0")
	assert.Contains(t, view, "2026-10-01")
	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "native")
	assert.Contains(t, view, "https://esteh-backend-production.up.railway.app/api")
}
