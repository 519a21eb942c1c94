// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the journal service.
//
// The primary abstraction is [ServerAdapter], which decouples the session
// service from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401). The server-provided "msg" field,
// when present, is available through [HTTPError].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the journal
// service. Implementations are stateless with respect to authentication: the
// bearer token is owned by the caller and passed explicitly.
type ServerAdapter interface {
	// Login sends the username to the login endpoint and returns the issued
	// access token. Returns an [*HTTPError] (wrapping a status sentinel) on a
	// non-2xx response, or an error wrapping [ErrTransport] if the request
	// could not be completed.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// ListEntries fetches the entries visible to the holder of token, in the
	// order returned by the server. A missing items field yields an empty
	// slice. Error semantics match Login.
	ListEntries(ctx context.Context, token models.Token) ([]models.Entry, error)
}
