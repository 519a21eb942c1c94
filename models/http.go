// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the success body of POST /login.
// Only access_token is consumed; other fields are ignored.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// ErrorResponse is the optional failure body returned by the journal
// service on any non-2xx status.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// EntriesResponse is the success body of GET /entries.
// A missing items field decodes to a nil slice, which callers treat as an
// empty list.
type EntriesResponse struct {
	Items []Entry `json:"items"`
}
