// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns journal entries into terminal text.
//
// Every string that originates from the server goes through [Sanitize]
// before it is styled, so entry content can never emit escape sequences,
// move the cursor or rewrite the terminal title. Callers only ever receive
// already-escaped text and have no way to bypass it.
package render
