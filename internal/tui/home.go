// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/esteh-pos/pos-client/internal/service"
	"github.com/esteh-pos/pos-client/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var roleTitles = map[models.Role]string{
	models.RoleKaryawan: "Cashier",
	models.RoleGudang:   "Warehouse",
	models.RoleOwner:    "Owner",
}

// HomeModel shows the signed-in user. r refreshes the profile through
// /me, l signs out.
type HomeModel struct {
	ctx  context.Context
	auth service.AuthService

	session models.Session
	busy    bool
	status  string
	overlay *errorOverlayModel
}

func NewHomeModel(ctx context.Context, auth service.AuthService) *HomeModel {
	return &HomeModel{ctx: ctx, auth: auth}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionStartedMsg:
		m.session = msg.session
		m.busy = false
		m.status = ""
		m.overlay = nil
		return m, nil
	case profileLoadedMsg:
		m.busy = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.session.User = msg.user
		m.status = "Profile refreshed."
		return m, nil
	case logoutDoneMsg:
		m.busy = false
		m.session = models.Session{}
		return m, func() tea.Msg { return NavigateTo{Page: pageLogin, Payload: loggedOutMsg{err: msg.err}} }
	case copiedMsg:
		if m.overlay != nil {
			m.overlay.copied(msg)
		}
		return m, nil
	case tea.KeyMsg:
		if m.overlay != nil {
			closed, cmd := m.overlay.handleKey(msg)
			if closed {
				m.overlay = nil
			}
			return m, cmd
		}
		if m.busy {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.refresh):
			m.busy = true
			m.status = "Refreshing..."
			return m, m.cmdRefresh()
		case key.Matches(msg, keys.logout):
			m.busy = true
			m.status = "Signing out..."
			return m, m.cmdLogout()
		}
	}
	return m, nil
}

func (m *HomeModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	user := m.session.User

	var b strings.Builder
	fmt.Fprintf(&b, "Signed in as %s\n\n", valueOrDash(user.Username))
	fmt.Fprintf(&b, "User ID  │ %d\n", user.ID)
	fmt.Fprintf(&b, "Role     │ %s\n", roleTitle(user.Role))
	fmt.Fprintf(&b, "Outlet   │ %s\n", outletLabel(user))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.status))
	}

	return renderPage("HOME", strings.TrimRight(b.String(), "\n"), "r: refresh profile │ l: sign out │ v: version")
}

func (m *HomeModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		user, err := auth.Me(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *HomeModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func roleTitle(role models.Role) string {
	if title, ok := roleTitles[role.Normalize()]; ok {
		return fmt.Sprintf("%s (%s)", title, role.Normalize())
	}
	return valueOrDash(string(role))
}

func outletLabel(user models.User) string {
	switch {
	case user.Outlet != nil && user.Outlet.Nama != "":
		return user.Outlet.Nama
	case user.OutletID != nil:
		return fmt.Sprintf("#%d", *user.OutletID)
	default:
		return "-"
	}
}
