// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-journal-client/internal/render"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

const (
	defaultViewportWidth  = 80
	defaultViewportHeight = 20

	// chrome is the number of lines the page frame takes around the viewport.
	chrome = 12
)

// listModel is the LoggedIn screen. items is the displayed region; it is
// replaced as a whole on every successful fetch and cleared on failure.
type listModel struct {
	items    []models.Entry
	idx      int
	loading  bool
	loaded   bool
	spinner  spinner.Model
	viewport viewport.Model
	status   string
	errMsg   string
	username string

	// tokenInfo is the display form of the JWT claims, empty for opaque
	// tokens.
	tokenInfo string
}

func newListModel() listModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return listModel{
		spinner:  s,
		viewport: viewport.New(defaultViewportWidth, defaultViewportHeight),
	}
}

func (m listModel) current() (models.Entry, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Entry{}, false
	}
	return m.items[m.idx], true
}

// body is the text of the entries region for the current state.
func (m listModel) body() string {
	switch {
	case m.loading:
		return m.spinner.View() + " " + render.Loading()
	case m.errMsg != "":
		return errorStyle.Render(m.errMsg)
	case !m.loaded:
		return ""
	default:
		return render.List(m.items, m.idx)
	}
}

// refreshContent pushes body into the viewport. It must be called after
// every change of items, idx, loading or errMsg.
func (m listModel) refreshContent() listModel {
	m.viewport.SetContent(m.body())
	return m
}

func (m listModel) resize(width, height int) listModel {
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-chrome, 3)
	return m
}

// tokenSummary describes the unverified claims of a JWT access token.
// Opaque tokens yield "".
func tokenSummary(token models.Token) string {
	claims, err := token.Claims()
	if err != nil {
		return ""
	}

	var parts []string
	if claims.Subject != "" {
		parts = append(parts, "subject "+render.Sanitize(claims.Subject))
	}
	if !claims.ExpiresAt.IsZero() {
		parts = append(parts, "expires "+claims.ExpiresAt.Format(time.RFC3339))
	}
	if len(parts) == 0 {
		return ""
	}
	return "Token: " + strings.Join(parts, ", ")
}

func (m listModel) View() string {
	var b strings.Builder

	if m.username != "" {
		b.WriteString("Logged in as ")
		b.WriteString(titleStyle.Render(render.Sanitize(m.username)))
		b.WriteString("\n")
		if m.tokenInfo != "" {
			b.WriteString(helpStyle.Render(m.tokenInfo))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}

	return renderPage("JOURNAL ENTRIES", b.String(), "↑/↓: select  c: copy  r: refresh  l: logout  v: about  q: quit")
}
