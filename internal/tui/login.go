// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/esteh-pos/pos-client/internal/service"
	"github.com/esteh-pos/pos-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the login screen. It renders two
// text inputs and dispatches an async login command on submission. Backend
// errors open an error overlay; on success the home page takes over.
type LoginModel struct {
	ctx  context.Context
	auth service.AuthService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
	notice     string
	overlay    *errorOverlayModel
}

// NewLoginModel creates a [LoginModel] with the username input focused and
// the password input masked.
func NewLoginModel(ctx context.Context, auth service.AuthService) *LoginModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		auth:   auth,
		inputs: []textinput.Model{usernameInput, passwordInput},
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state; errors open the overlay.
//   - loggedOutMsg   shows why the form is back.
//   - tab/shift+tab  move focus between inputs.
//   - enter          validates inputs and dispatches the login command.
//
// While the overlay is open it receives every key.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		m.submitting = false
		if msg.Err != nil {
			m.overlay = newErrorOverlay(msg.Err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageHome, Payload: sessionStartedMsg{session: msg.Session}}
		}
	case loggedOutMsg:
		m.reset()
		m.notice = "Signed out."
		if msg.err != nil {
			m.notice = "Signed out locally. The server was not notified: " + msg.err.Error()
		}
		return m, textinput.Blink
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

		switch {
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "tab: next field │ enter: sign in")
}

func (m *LoginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		resp, err := auth.Login(ctx, models.LoginRequest{Username: username, Password: password})
		if err != nil {
			return LoginResult{Err: err}
		}
		return LoginResult{Session: models.Session{Token: resp.BearerToken(), User: *resp.User}}
	}
}

func (m *LoginModel) reset() {
	m.inputs[1].SetValue("")
	m.errMsg = ""
	m.overlay = nil
	m.submitting = false
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
