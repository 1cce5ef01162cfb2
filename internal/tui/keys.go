// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	refresh key.Binding
	logout  key.Binding
	copy    key.Binding
	version key.Binding
}

var keys = keyMap{
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	refresh: key.NewBinding(key.WithKeys("r")),
	logout:  key.NewBinding(key.WithKeys("l")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("v")),
}
