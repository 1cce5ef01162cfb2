// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
)

// Request sends a JSON request through gw and decodes the response body
// into T. A body that is valid JSON but does not fit T yields an
// [ErrInvalidJSON] error.
func Request[T any](ctx context.Context, gw Gateway, endpoint string, opts RequestOptions) (T, error) {
	var out T
	raw, err := gw.Do(ctx, endpoint, opts)
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, shapeError(gw.URL(endpoint), err)
	}
	return out, nil
}

// RequestFormData sends form as a multipart request through gw and decodes
// the response body into T. method defaults to POST.
func RequestFormData[T any](ctx context.Context, gw Gateway, endpoint string, form *FormData, method string) (T, error) {
	var out T
	raw, err := gw.DoForm(ctx, endpoint, form, method)
	if err != nil {
		return out, err
	}
	if err = json.Unmarshal(raw, &out); err != nil {
		return out, shapeError(gw.URL(endpoint), err)
	}
	return out, nil
}

// shapeError leaves Status at 0: only 2xx bodies are decoded and the exact
// code is not carried past the gateway.
func shapeError(target string, err error) error {
	return &RequestError{
		Kind:    ErrInvalidJSON,
		URL:     target,
		Message: fmt.Sprintf("Unexpected response shape from %s: %v", target, err),
		Err:     err,
	}
}
