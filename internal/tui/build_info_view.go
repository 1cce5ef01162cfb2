// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/esteh-pos/pos-client/internal/service"
)

func renderBuildInfoWindow(ctx context.Context, appInfo service.AppInfoService) string {
	info := appInfo.BuildInfo(ctx)

	var b strings.Builder
	b.WriteString("Application: POS client\n")
	b.WriteString("Version:     ")
	b.WriteString(valueOrDash(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Built:       ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit:      ")
	b.WriteString(info.BuildCommit())
	b.WriteString("\n")
	b.WriteString("Platform:    ")
	b.WriteString(valueOrDash(appInfo.Platform(ctx)))
	b.WriteString("\n")
	b.WriteString("Backend:     ")
	b.WriteString(valueOrDash(appInfo.BackendURL(ctx)))

	return renderPage("ABOUT", b.String(), "esc: back")
}
