// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is a single journal record owned by the remote service.
// The client treats it as read-only display data.
type Entry struct {
	// ID is the server-side identifier. Optional in the payload.
	ID Identifier `json:"id,omitempty"`

	// Title is the entry headline.
	Title string `json:"title"`

	// Content is the free-form body of the entry.
	Content string `json:"content"`

	// UserID identifies the owner of the entry.
	UserID Identifier `json:"user_id"`
}

// Identifier holds a server identifier that may arrive either as a JSON
// number or as a JSON string. It keeps the textual form unchanged so that
// large numeric IDs are not rounded through float64.
type Identifier string

// UnmarshalJSON implements [json.Unmarshaler].
func (i *Identifier) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode identifier string: %w", err)
		}
		*i = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode identifier number: %w", err)
	}
	*i = Identifier(n.String())
	return nil
}

// String returns the identifier's textual form.
func (i Identifier) String() string {
	return string(i)
}
