// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidDataProvided wraps payload validation failures.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnknownRole is returned by Login when the account's role has no
	// place in the client. The session is cleared.
	ErrUnknownRole = errors.New("role is not supported by this application")

	// ErrIncompleteLogin is returned by Login when the backend answered
	// without a token or without a user.
	ErrIncompleteLogin = errors.New("login response has no token or user")

	// ErrUnexpectedProfile is returned by Me when the profile has no id.
	ErrUnexpectedProfile = errors.New("profile response has no user")

	// ErrNotAuthenticated is returned by calls that need a session when
	// none exists.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidDateRange is returned for report ranges that are not
	// YYYY-MM-DD dates or end before they start.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrVersionIsNotSpecified is returned when build info carries no version.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
