// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the locally persisted session artifact: the opaque bearer token
// and the cached profile of the user it belongs to. Both are present together
// or the session does not exist.
type Session struct {
	Token string
	User  User
}

// Valid reports whether s carries both halves of the artifact.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.ID != 0
}
