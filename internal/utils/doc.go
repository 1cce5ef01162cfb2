// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the client layers: the resty
// HTTP client wrapper, unverified bearer-token inspection and request ID
// generation.
package utils
