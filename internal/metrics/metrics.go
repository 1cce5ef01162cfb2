// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics defines the Prometheus collectors of the API gateway.
//
// Collectors are registered on an injected prometheus.Registerer (promauto
// with a custom registry) so tests and embedders never touch the global
// default registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pos_client"

// OutcomeOK is the outcome label of a request that produced data.
const OutcomeOK = "ok"

// GatewayMetrics records outbound API calls. A nil *GatewayMetrics is valid
// and records nothing.
type GatewayMetrics struct {
	// RequestsTotal counts finished requests.
	// Labels:
	//   - method: HTTP method
	//   - outcome: "ok" or the failure kind (e.g. "not_found", "network")
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes wall time from send to classification.
	// Label:
	//   - method: HTTP method
	RequestDuration *prometheus.HistogramVec
}

// NewGatewayMetrics creates the gateway collectors and registers them on reg.
func NewGatewayMetrics(reg prometheus.Registerer) *GatewayMetrics {
	factory := promauto.With(reg)

	return &GatewayMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "requests_total",
				Help:      "Total number of backend API requests, labelled by method and outcome.",
			},
			[]string{"method", "outcome"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "request_duration_seconds",
				Help:      "Backend API request latency in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Observe records one finished request.
func (m *GatewayMetrics) Observe(method, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, outcome).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
