// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-journal-client/models"
)

// ClientSessionService owns the in-memory session of the journal client and
// is the only component allowed to change it. It implements the
// LoggedOut/LoggedIn state machine:
//
//	LoggedOut --Login ok--> LoggedIn
//	LoggedIn  --Logout----> LoggedOut
//	LoggedIn  --LoadEntries--> LoggedIn
//
// Failed operations never change the state.
type ClientSessionService interface {
	// Login validates identifier (whitespace-trimmed, non-empty), sends it to
	// the server and on success stores the returned token and moves the
	// session to LoggedIn.
	//
	// Errors: [ErrEmptyIdentifier] without any request; [*AuthError] on a
	// non-success answer (server "msg" or a generic text); [*NetworkError] on
	// transport failure; [ErrRequestInFlight] if another Login is
	// outstanding; [ErrAlreadyLoggedIn] if the session is already LoggedIn.
	// No retries are made.
	Login(ctx context.Context, identifier string) (models.Token, error)

	// Logout discards the token and returns the session to LoggedOut. It is
	// idempotent and always succeeds. Results of requests still in flight
	// are discarded.
	Logout()

	// LoadEntries fetches the entry list with the session token as a bearer
	// credential. The returned slice is never nil on success and keeps the
	// server order.
	//
	// Errors: [ErrNotLoggedIn] without any request; an error wrapping
	// [ErrLoadEntries] on a non-success answer; [*NetworkError] on transport
	// failure; [ErrRequestInFlight] if another fetch is outstanding;
	// [ErrSessionChanged] if the session was logged out meanwhile.
	LoadEntries(ctx context.Context) ([]models.Entry, error)

	// State returns the current session state.
	State() models.SessionState

	// Token returns the current token; zero when LoggedOut.
	Token() models.Token

	// Username returns the identifier of the logged-in user; empty when
	// LoggedOut.
	Username() string
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	// GetBuildInfo returns version, date and commit injected at build time.
	GetBuildInfo() models.AppBuildInfo
}
