// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState is the view state of the journal client.
type SessionState int

const (
	// LoggedOut is the initial state; no token is held.
	LoggedOut SessionState = iota
	// LoggedIn means a token is held and authenticated requests are allowed.
	LoggedIn
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case LoggedIn:
		return "logged_in"
	default:
		return "logged_out"
	}
}
