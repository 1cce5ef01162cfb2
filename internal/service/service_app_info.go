// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/esteh-pos/pos-client/internal/config"
	"github.com/esteh-pos/pos-client/internal/logger"
	"github.com/esteh-pos/pos-client/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	baseURL   string
	platform  string

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo together with the resolved backend of
// cfg. A build without a version is rejected.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg *config.ClientConfig, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.BuildVersion() == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo: buildInfo,
		baseURL:   cfg.Adapter.BaseURL,
		platform:  cfg.App.Platform,
		logger:    logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) BackendURL(ctx context.Context) string {
	return s.baseURL
}

func (s *appInfoService) Platform(ctx context.Context) string {
	return s.platform
}
