// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// journal client services and TUI.
//
// All Msg* constants are the short human-readable strings shown to the user
// in the login or entries region. Keeping them in one place ensures
// consistent wording between the service errors and the views.
package app

const (
	// MsgEmptyIdentifier is shown when the login form is submitted with an
	// empty or whitespace-only username. No request is sent.
	MsgEmptyIdentifier = "Please enter a username."

	// MsgLoginFailed is the fallback shown when the login endpoint answers
	// with a non-success status and no "msg" field.
	MsgLoginFailed = "Login failed."

	// MsgNetworkError is shown when the login request could not be
	// completed at the transport level.
	MsgNetworkError = "Network error."

	// MsgLoadingEntries is shown in the entries region while the list
	// request is outstanding.
	MsgLoadingEntries = "Loading entries..."

	// MsgLoadEntriesFailed is shown when the entries endpoint answers with a
	// non-success status.
	MsgLoadEntriesFailed = "Failed to load entries."

	// MsgLoadEntriesNetworkError is shown when the entries request could not
	// be completed at the transport level.
	MsgLoadEntriesNetworkError = "Network error loading entries."

	// MsgNoEntries is shown instead of a blank region when the server
	// returns an empty list.
	MsgNoEntries = "No entries found."

	// MsgNotLoggedIn is shown when an authenticated action is attempted
	// without a session.
	MsgNotLoggedIn = "You must login first."

	// MsgRequestInFlight is shown when an action is re-triggered while the
	// previous request of the same kind is still outstanding.
	MsgRequestInFlight = "Request already in progress."

	// MsgAlreadyLoggedIn is shown when login is attempted while a session
	// is active.
	MsgAlreadyLoggedIn = "Already logged in. Logout first."

	// MsgSessionChanged is shown when a response arrives for a session that
	// was logged out in the meantime.
	MsgSessionChanged = "Session ended before the request completed."
)
