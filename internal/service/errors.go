// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-journal-client/internal/app"
)

var (
	// ErrEmptyIdentifier is the validation error for an empty username.
	ErrEmptyIdentifier = errors.New("empty identifier")

	// ErrAuth is the sentinel every [*AuthError] unwraps to.
	ErrAuth = errors.New("authentication failed")

	// ErrLoadEntries marks a non-success answer of the entries endpoint.
	ErrLoadEntries = errors.New("load entries failed")

	// ErrNetwork is the sentinel every [*NetworkError] unwraps to.
	ErrNetwork = errors.New("network error")

	ErrNotLoggedIn     = errors.New("not logged in")
	ErrAlreadyLoggedIn = errors.New("already logged in")
	ErrRequestInFlight = errors.New("request already in flight")

	// ErrSessionChanged is returned by LoadEntries when the session was
	// logged out or replaced while the request was outstanding. The result
	// belongs to a session that no longer exists and must be dropped.
	ErrSessionChanged = errors.New("session changed during request")
)

// AuthError is returned by Login when the server rejects the credentials.
// Msg is the server-provided message or the generic fallback.
type AuthError struct {
	Msg string

	cause error
}

func (e *AuthError) Error() string {
	return e.Msg
}

// Unwrap exposes both [ErrAuth] and the underlying adapter error.
func (e *AuthError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrAuth}
	}
	return []error{ErrAuth, e.cause}
}

// NetworkError is returned when a request could not be completed or its
// response could not be read. Msg is the user-facing text for the
// operation that failed.
type NetworkError struct {
	Msg string

	cause error
}

func (e *NetworkError) Error() string {
	if e.cause == nil {
		return e.Msg
	}
	return e.Msg + ": " + e.cause.Error()
}

// Unwrap exposes both [ErrNetwork] and the underlying transport error.
func (e *NetworkError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrNetwork}
	}
	return []error{ErrNetwork, e.cause}
}

// UserMessage converts any error returned by the session service into the
// short text shown in the UI. Unknown errors are shown verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var authErr *AuthError
	var netErr *NetworkError

	switch {
	case errors.Is(err, ErrEmptyIdentifier):
		return app.MsgEmptyIdentifier
	case errors.As(err, &authErr):
		return authErr.Msg
	case errors.As(err, &netErr):
		return netErr.Msg
	case errors.Is(err, ErrLoadEntries):
		return app.MsgLoadEntriesFailed
	case errors.Is(err, ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, ErrRequestInFlight):
		return app.MsgRequestInFlight
	case errors.Is(err, ErrAlreadyLoggedIn):
		return app.MsgAlreadyLoggedIn
	case errors.Is(err, ErrSessionChanged):
		return app.MsgSessionChanged
	default:
		return err.Error()
	}
}
