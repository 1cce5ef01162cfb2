// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/internal/metrics"
	"github.com/esteh-pos/pos-client/internal/service"
	"github.com/esteh-pos/pos-client/internal/session"
	"github.com/esteh-pos/pos-client/internal/store"
	"github.com/esteh-pos/pos-client/internal/tui"
	"github.com/esteh-pos/pos-client/models"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// UI is what [App] runs once everything is wired.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	storages *store.ClientStorages
	session  *session.Store
	services *service.ClientServices
	appInfo  service.AppInfoService
	registry *prometheus.Registry
	ui       UI

	logger *logger.Logger
}

// NewApp opens storage, loads the persisted session and builds the gateway,
// the services and the UI on top of it.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	var sessOpts []session.Option
	if cfg.Session.DropExpired {
		sessOpts = append(sessOpts, session.WithExpiredTokenDrop())
	}
	sess := session.NewStore(storages.SessionRepository, log, sessOpts...)
	if current, ok := sess.Load(ctx); ok {
		log.Info().
			Int64("user_id", current.User.ID).
			Str("role", string(current.User.Role)).
			Msg("persisted session found")
	}

	registry := prometheus.NewRegistry()
	gw, err := adapter.NewHTTPGateway(cfg.Adapter, sess, metrics.NewGatewayMetrics(registry), log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create api gateway: %w", err)
	}

	services := service.NewClientServices(gw, sess)

	appInfo, err := service.NewAppInfoService(buildInfo, cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create app info service: %w", err)
	}

	ui, err := tui.New(services, appInfo, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages: storages,
		session:  sess,
		services: services,
		appInfo:  appInfo,
		registry: registry,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run blocks in the UI. Storage is closed and the request counters are
// logged on the way out.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("error closing storage")
		}
	}()

	a.logger.Info().
		Str("backend", a.appInfo.BackendURL(ctx)).
		Str("platform", a.appInfo.Platform(ctx)).
		Str("build", a.appInfo.BuildInfo(ctx).String()).
		Msg("client started")

	err := a.ui.Run(ctx)
	a.logRequestStats()
	return err
}

// logRequestStats writes one log line per method and outcome seen during
// the run.
func (a *App) logRequestStats() {
	families, err := a.registry.Gather()
	if err != nil {
		a.logger.Err(err).Msg("error gathering request metrics")
		return
	}

	for _, family := range families {
		if family.GetType() != dto.MetricType_COUNTER {
			continue
		}
		for _, metric := range family.GetMetric() {
			event := a.logger.Info().Str("metric", family.GetName())
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("count", metric.GetCounter().GetValue()).Msg("request stats")
		}
	}
}
