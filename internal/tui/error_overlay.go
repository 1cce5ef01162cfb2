// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// errorOverlayModel shows a server error verbatim until dismissed. The
// messages are multi-line guidance texts, so they are never truncated.
type errorOverlayModel struct {
	message string
	status  string
}

func newErrorOverlay(err error) *errorOverlayModel {
	return &errorOverlayModel{message: err.Error()}
}

// handleKey reports whether the overlay was dismissed.
func (m *errorOverlayModel) handleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		return true, nil
	case key.Matches(msg, keys.copy):
		return false, cmdCopy(m.message)
	}
	return false, nil
}

func (m *errorOverlayModel) copied(msg copiedMsg) {
	if msg.err != nil {
		m.status = fmt.Sprintf("copy failed: %v", msg.err)
		return
	}
	m.status = "copied to clipboard"
}

func (m *errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(noticeStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter / esc: close │ c: copy"))
	return overlayBoxStyle.Render(b.String())
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}
