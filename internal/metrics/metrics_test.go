// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGatewayMetrics(reg)

	m.Observe("GET", OutcomeOK, 20*time.Millisecond)
	m.Observe("GET", OutcomeOK, 30*time.Millisecond)
	m.Observe("POST", "network", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("POST", "network")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.RequestDuration))
}

func TestGatewayMetrics_Registered(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewGatewayMetrics(reg)
	m.Observe("DELETE", "not_found", time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "pos_client_requests_total")
	assert.Contains(t, names, "pos_client_request_duration_seconds")
}

func TestGatewayMetrics_NilIsNoop(t *testing.T) {
	var m *GatewayMetrics

	assert.NotPanics(t, func() { m.Observe("GET", OutcomeOK, time.Millisecond) })
}
