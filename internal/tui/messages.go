// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-journal-client/models"
)

type loginDoneMsg struct {
	token models.Token
	err   error
}

type entriesLoadedMsg struct {
	items []models.Entry
	err   error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
