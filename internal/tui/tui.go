// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal shell of the POS client. It restores the
// session, signs users in and out and shows who is signed in. Everything
// it does goes through the services.
package tui

import (
	"context"

	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names understood by [RootModel].
const (
	pageSplash = "splash"
	pageLogin  = "login"
	pageHome   = "home"
)

type TUI struct {
	services *service.ClientServices
	appInfo  service.AppInfoService
	logger   *logger.Logger
}

func New(services *service.ClientServices, appInfo service.AppInfoService, log *logger.Logger) (*TUI, error) {
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{services: services, appInfo: appInfo, logger: log}, nil
}

// Run shows the shell until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	pages := map[string]tea.Model{
		pageSplash: NewSplashModel(ctx, t.services.AuthService, t.appInfo.BuildInfo(ctx)),
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageHome:   NewHomeModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, pageSplash, renderBuildInfoWindow(ctx, t.appInfo))
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Msg("user quit")
	}
	return nil
}
