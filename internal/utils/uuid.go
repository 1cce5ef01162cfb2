// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// RequestIDHeader carries the client-generated correlation ID of a request.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the clock source fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
