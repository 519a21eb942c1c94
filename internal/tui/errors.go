// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-journal-client/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user left with ctrl+c or q.
var ErrUserQuit = errors.New("user quit")

// humanize turns an error of the session service into the one-line text
// shown in the UI.
func humanize(err error) string {
	return service.UserMessage(err)
}
