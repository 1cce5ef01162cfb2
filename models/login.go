// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body returned by POST /login.
//
// Two backend revisions disagree on the name of the token field, so both are
// decoded; callers must read the token through [LoginResponse.BearerToken].
type LoginResponse struct {
	AccessToken string `json:"access_token,omitempty"`
	Token       string `json:"token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
	User        *User  `json:"user,omitempty"`
	Message     string `json:"message,omitempty"`
}

// BearerToken returns access_token, falling back to token.
//
// TODO: drop the token fallback once every deployed backend answers with
// access_token only.
func (r LoginResponse) BearerToken() string {
	if r.AccessToken != "" {
		return r.AccessToken
	}
	return r.Token
}

// MessageResponse is the generic {"message": "..."} acknowledgement returned
// by delete and logout endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
