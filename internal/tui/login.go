// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
)

// usernameCharLimit bounds the login field; the service itself has no limit.
const usernameCharLimit = 64

// loginModel is the LoggedOut screen: a single username input plus the
// region where login errors are shown.
type loginModel struct {
	input      textinput.Model
	spinner    spinner.Model
	submitting bool
	errMsg     string
}

func newLoginModel(username string) loginModel {
	input := textinput.New()
	input.Placeholder = "username"
	input.Prompt = "Username: "
	input.CharLimit = usernameCharLimit
	input.Width = 40
	input.SetValue(username)
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return loginModel{input: input, spinner: s}
}

// reset clears the form after logout.
func (m loginModel) reset() loginModel {
	m.input.SetValue("")
	m.input.Focus()
	m.submitting = false
	m.errMsg = ""
	return m
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Logging in...")
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("JOURNAL LOGIN", b.String(), "enter: login")
}
