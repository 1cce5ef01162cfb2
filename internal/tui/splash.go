// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/esteh-pos/pos-client/internal/service"
	"github.com/esteh-pos/pos-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

// SplashModel restores the persisted session and routes to the home page
// or to the login form.
type SplashModel struct {
	ctx       context.Context
	auth      service.AuthService
	buildInfo models.AppBuildInfo
}

func NewSplashModel(ctx context.Context, auth service.AuthService, buildInfo models.AppBuildInfo) *SplashModel {
	return &SplashModel{ctx: ctx, auth: auth, buildInfo: buildInfo}
}

func (m *SplashModel) Init() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		sess, ok := auth.RestoreSession(ctx)
		return sessionRestoredMsg{session: sess, ok: ok}
	}
}

func (m *SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	restored, ok := msg.(sessionRestoredMsg)
	if !ok {
		return m, nil
	}

	if restored.ok {
		return m, func() tea.Msg {
			return NavigateTo{Page: pageHome, Payload: sessionStartedMsg{session: restored.session}}
		}
	}
	return m, func() tea.Msg { return NavigateTo{Page: pageLogin} }
}

func (m *SplashModel) View() string {
	return renderPage("POS CLIENT", m.buildInfo.String()+"\n\nRestoring session...", "v: version")
}
