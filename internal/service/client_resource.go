// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/esteh-pos/pos-client/internal/adapter"
	"github.com/esteh-pos/pos-client/internal/validators"
)

// resourceClient is the shared plumbing of the resource services.
type resourceClient struct {
	gw        adapter.Gateway
	validator validators.Validator
}

func (r resourceClient) validate(ctx context.Context, payload any) error {
	if err := r.validator.Validate(ctx, payload); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func getResource[T any](ctx context.Context, r resourceClient, endpoint string) (T, error) {
	return adapter.Request[T](ctx, r.gw, endpoint, adapter.RequestOptions{Method: http.MethodGet})
}

// sendResource validates payload and sends it as the JSON body.
func sendResource[T any](ctx context.Context, r resourceClient, method, endpoint string, payload any) (T, error) {
	var zero T
	if err := r.validate(ctx, payload); err != nil {
		return zero, err
	}
	return adapter.Request[T](ctx, r.gw, endpoint, adapter.RequestOptions{Method: method, Body: payload})
}

func deleteResource(ctx context.Context, r resourceClient, endpoint string) error {
	_, err := r.gw.Do(ctx, endpoint, adapter.RequestOptions{Method: http.MethodDelete})
	return err
}

// sendForm validates payload and submits form as multipart via POST.
func sendForm[T any](ctx context.Context, r resourceClient, endpoint string, payload any, form *adapter.FormData) (T, error) {
	var zero T
	if err := r.validate(ctx, payload); err != nil {
		return zero, err
	}
	return adapter.RequestFormData[T](ctx, r.gw, endpoint, form, http.MethodPost)
}

func rawResource(ctx context.Context, r resourceClient, endpoint string) (json.RawMessage, error) {
	return r.gw.Do(ctx, endpoint, adapter.RequestOptions{Method: http.MethodGet})
}
