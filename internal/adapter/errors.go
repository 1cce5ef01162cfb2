// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Kinds of gateway failure. A [*RequestError] matches exactly one of them
// under [errors.Is].
var (
	ErrEmptyResponse    = errors.New("empty response")
	ErrInvalidJSON      = errors.New("invalid json response")
	ErrNotFound         = errors.New("endpoint not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrHTTP             = errors.New("http error")
	ErrNetwork          = errors.New("network error")
)

// RequestError is returned by every failing gateway call.
type RequestError struct {
	// Kind is one of the sentinels above.
	Kind error
	// Status is the HTTP status, or 0 when no response was received.
	Status int
	// URL is the absolute request URL.
	URL string
	// Message is the user-facing description.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *RequestError) Error() string { return e.Message }

// Is reports whether target is the kind of e.
func (e *RequestError) Is(target error) bool { return e.Kind == target }

func (e *RequestError) Unwrap() error { return e.Err }

// KindName returns a short label for the kind of err, used as a metrics
// outcome. Errors that did not come from the gateway yield "other".
func KindName(err error) string {
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return "empty_response"
	case errors.Is(err, ErrInvalidJSON):
		return "invalid_json"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrMethodNotAllowed):
		return "method_not_allowed"
	case errors.Is(err, ErrHTTP):
		return "http"
	case errors.Is(err, ErrNetwork):
		return "network"
	default:
		return "other"
	}
}
