// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Status sentinels. Every [*HTTPError] unwraps to exactly one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTransport marks failures where no HTTP response was received
	// (connection refused, DNS failure, timeout, cancelled context).
	ErrTransport = errors.New("transport failure")

	// ErrMalformedResponse marks a 2xx response whose body is not valid JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// HTTPError describes a non-2xx response from the journal service.
type HTTPError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Msg is the "msg" field of the JSON error body, empty if the body was
	// absent or not in the expected shape.
	Msg string

	kind error
}

// NewHTTPError builds an [*HTTPError] for status code with the decoded
// server message.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{StatusCode: code, Msg: msg, kind: statusKind(code)}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%v (http %d)", e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%v (http %d): %s", e.kind, e.StatusCode, e.Msg)
}

// Unwrap returns the status sentinel so that errors.Is works against
// ErrUnauthorized and friends.
func (e *HTTPError) Unwrap() error {
	return e.kind
}
