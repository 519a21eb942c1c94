// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the journal client.
// Includes tools for working with context, type-safe keys, request
// identifiers and HTTP client initialization.
package utils

import (
	"context"
)

// RequestIDHeader is the HTTP header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// RequestIDCtxKey is the key used to store the request identifier in the
// context.
var RequestIDCtxKey = contextKey("requestID")

var requestIDs = NewUUIDGenerator()

// WithRequestID returns a copy of ctx carrying a freshly generated request
// identifier, together with that identifier. Use it when the caller wants to
// log the same ID that will be sent to the server.
func WithRequestID(ctx context.Context) (context.Context, string) {
	id := requestIDs.Generate()
	return context.WithValue(ctx, RequestIDCtxKey, id), id
}

// GetRequestIDFromContext retrieves the request identifier from the context.
//
// Returns the ID and an ok flag:
//   - ok == true:  value is found, is a string and is non-empty
//   - ok == false: value is missing or has an unexpected type
func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(RequestIDCtxKey).(string)
	return id, ok && id != ""
}

// RequestIDFromContext returns the request identifier stored in ctx, or a
// new one if none is present.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return id
	}
	return requestIDs.Generate()
}
