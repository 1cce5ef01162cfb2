// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values that are not structs or
	// pointers to structs.
	ErrUnsupportedType = errors.New("unsupported type for validation")
	// ErrInvalidPayload wraps every rule violation.
	ErrInvalidPayload = errors.New("invalid payload")
)
