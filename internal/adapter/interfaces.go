// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the single chokepoint between the POS client and its
// REST backend.
//
// [Gateway] attaches the bearer token supplied by a [TokenSource], sends the
// request, and classifies the outcome. Every failure is returned as a
// [*RequestError] whose Error() text is ready to be shown to the user and
// whose Kind can be matched with [errors.Is] against the sentinels in
// errors.go. The gateway never retries and never touches session state.
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_mock.go -package=mock

// TokenSource yields the bearer token of the current session.
type TokenSource interface {
	// GetToken returns the stored token and true, or "" and false when no
	// session is active.
	GetToken(ctx context.Context) (string, bool)
}

// Gateway sends requests to the backend and normalises their outcome.
type Gateway interface {
	// Do sends a JSON request to endpoint and returns the raw response body
	// on success. The body is passed through verbatim; an inner "data" field
	// is never unwrapped.
	Do(ctx context.Context, endpoint string, opts RequestOptions) (json.RawMessage, error)

	// DoForm sends form as multipart/form-data using method (POST when
	// empty). Classification matches Do except for the 405 message. Only
	// POST, PUT and PATCH carry a multipart body; any other method fails
	// with [ErrMethodNotAllowed] before anything is sent.
	DoForm(ctx context.Context, endpoint string, form *FormData, method string) (json.RawMessage, error)

	// URL returns the absolute URL endpoint resolves to.
	URL(endpoint string) string
}

// RequestOptions carries the per-call parts of a JSON request.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Headers override the JSON Content-Type and Accept defaults.
	Headers map[string]string
	// Body is sent as-is when it is a string, []byte or json.RawMessage and
	// JSON-encoded otherwise. Nil sends no body.
	Body any
}
