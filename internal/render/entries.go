// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"strings"

	"github.com/MKhiriev/go-journal-client/internal/app"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	metaStyle     = lipgloss.NewStyle().Faint(true)
	blockStyle    = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			PaddingLeft(1)
)

// NoSelection disables the cursor in [List].
const NoSelection = -1

// Entries renders every entry as a block of title, content and owner, in
// the order given. An empty slice renders as the "no entries" indicator.
func Entries(entries []models.Entry) string {
	return List(entries, NoSelection)
}

// List is [Entries] with the block at index selected highlighted.
func List(entries []models.Entry, selected int) string {
	if len(entries) == 0 {
		return app.MsgNoEntries
	}

	blocks := make([]string, 0, len(entries))
	for i, e := range entries {
		style := blockStyle
		if i == selected {
			style = selectedStyle
		}
		blocks = append(blocks, style.Render(Entry(e)))
	}

	return strings.Join(blocks, "\n\n")
}

// Entry renders a single entry block without outer padding: title,
// content and owner, one per line. Blank fields keep their line.
func Entry(e models.Entry) string {
	return strings.Join([]string{
		titleStyle.Render(Sanitize(e.Title)),
		Sanitize(e.Content),
		metaStyle.Render("User ID: " + Sanitize(e.UserID.String())),
	}, "\n")
}

// Loading is the placeholder shown while entries are being fetched.
func Loading() string {
	return app.MsgLoadingEntries
}
