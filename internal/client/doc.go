// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI and the client services into a single process
// lifecycle and makes sure the in-memory session is discarded on exit.
package client
