// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient(0, nil)

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Timeout(t *testing.T) {
	client := NewHTTPClient(3*time.Second, nil)

	assert.Equal(t, 3*time.Second, client.GetClient().Timeout)
}

func TestNewHTTPClient_NoTimeoutByDefault(t *testing.T) {
	client := NewHTTPClient(0, nil)

	assert.Zero(t, client.GetClient().Timeout)
}

func TestNewHTTPClient_NoRetries(t *testing.T) {
	client := NewHTTPClient(0, nil)

	assert.Equal(t, 0, client.RetryCount)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient(0, nil)
	client2 := NewHTTPClient(0, nil)

	assert.NotSame(t, client1.Client, client2.Client)
}
