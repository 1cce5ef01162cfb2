// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient that never retries, follows at most ten
// redirects and reports resty's internal warnings through log. A zero timeout
// leaves requests bounded only by their context.
func NewHTTPClient(timeout time.Duration, log resty.Logger) *HTTPClient {
	cli := resty.New().
		SetRetryCount(0).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))

	if timeout > 0 {
		cli.SetTimeout(timeout)
	}
	if log != nil {
		cli.SetLogger(log)
	}

	return &HTTPClient{Client: cli}
}
