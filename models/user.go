// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity submitted to the journal service on login.
// The service authenticates by username only.
type User struct {
	// Username is the login identifier typed by the user.
	// It is whitespace-trimmed before being sent.
	Username string `json:"username"`
}
