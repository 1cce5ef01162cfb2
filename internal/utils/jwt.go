// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiresAt] when the token is a JWT without
// an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiresAt reads the exp claim of a bearer token without verifying its
// signature. The client never holds the signing key; the value is only used to
// drop sessions that are certainly stale.
//
// Tokens that are not JWTs (the backend may issue opaque tokens) return an
// error; callers should treat such tokens as non-expiring.
func TokenExpiresAt(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse bearer token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString is a JWT whose exp claim lies
// before now. Opaque tokens and JWTs without exp are never expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiresAt(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
