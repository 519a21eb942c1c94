// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front end of the journal client. It drives a
// single Bubble Tea program with a login screen and an entries screen on
// top of [service.ClientSessionService].
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI owns the Bubble Tea program options and the services the screens
// call into.
type TUI struct {
	services *service.ClientServices
	username string
	options  []tea.ProgramOption

	logger *logger.Logger
}

// New returns a TUI bound to services. username pre-fills the login field.
func New(services *service.ClientServices, username string, log *logger.Logger, opts ...tea.ProgramOption) (*TUI, error) {
	if services == nil || services.SessionService == nil {
		return nil, errors.New("tui: nil session service")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &TUI{
		services: services,
		username: username,
		options:  append([]tea.ProgramOption{tea.WithAltScreen()}, opts...),
		logger:   log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. It returns
// [ErrUserQuit] when the user quit from the keyboard and nil when ctx was
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.username, t.logger)

	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		if ctx.Err() != nil && errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
