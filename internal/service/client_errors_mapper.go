// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal-client/internal/adapter"
	"github.com/MKhiriev/go-journal-client/internal/app"
)

// mapLoginError translates the adapter's login error into a service error.
// Any HTTP status becomes an [*AuthError]; everything else (no response,
// unreadable body) is a [*NetworkError].
func mapLoginError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Msg
		if msg == "" {
			msg = app.MsgLoginFailed
		}
		return &AuthError{Msg: msg, cause: err}
	}

	return &NetworkError{Msg: app.MsgNetworkError, cause: err}
}

// mapEntriesError translates the adapter's list error into a service error.
// The server message is intentionally not surfaced for entries.
func mapEntriesError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return fmt.Errorf("%w: %w", ErrLoadEntries, err)
	}

	return &NetworkError{Msg: app.MsgLoadEntriesNetworkError, cause: err}
}
