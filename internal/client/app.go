// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/service"
	"github.com/MKhiriev/go-journal-client/internal/tui"
)

// App runs the UI on top of the client services.
type App struct {
	services *service.ClientServices
	ui       UI

	logger *logger.Logger
}

// NewApp validates its dependencies and returns a ready [App].
func NewApp(services *service.ClientServices, ui UI, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	if ui == nil {
		return nil, errors.New("nil ui")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{services: services, ui: ui, logger: log}, nil
}

// Run blocks until the UI exits or the process receives SIGINT/SIGTERM.
// The session is logged out on the way out so the token does not outlive
// the UI.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	defer a.services.SessionService.Logout()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}
