// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/esteh-pos/pos-client/models"

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of running its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type sessionRestoredMsg struct {
	session models.Session
	ok      bool
}

// sessionStartedMsg hands a signed-in session to the home page.
type sessionStartedMsg struct {
	session models.Session
}

// LoginResult is produced by the login command.
type LoginResult struct {
	Session models.Session
	Err     error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type logoutDoneMsg struct {
	err error
}

// loggedOutMsg tells the login page why it is shown again.
type loggedOutMsg struct {
	err error
}

type copiedMsg struct {
	err error
}
