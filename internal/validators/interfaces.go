// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they are sent to the
// backend, so obviously incomplete input never costs a round trip.
//
// [PayloadValidator] is driven by go-playground/validator struct tags on the
// models. Field names in messages come from the form or json tag of the
// field, matching the names the backend uses in its own error messages.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named (Go) fields.
	Validate(context.Context, any, ...string) error
}
