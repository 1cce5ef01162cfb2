// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/esteh-pos/pos-client/internal/client"
	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersionOrDev(), buildDate, buildCommit)
	fmt.Println(buildInfo.String())

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("pos-client", cfg.App.LogLevel, cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := client.NewApp(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func buildVersionOrDev() string {
	if buildVersion == "" {
		return "dev"
	}
	return buildVersion
}
