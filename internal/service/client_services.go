// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-journal-client/internal/adapter"
	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/models"
)

// ClientServices groups the services the TUI depends on. It is constructed
// once at startup and passed by reference.
type ClientServices struct {
	SessionService ClientSessionService
	AppInfoService AppInfoService
}

// NewClientServices wires the client services around serverAdapter.
func NewClientServices(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, log *logger.Logger) (*ClientServices, error) {
	if serverAdapter == nil {
		return nil, errors.New("nil server adapter")
	}
	if log == nil {
		log = logger.Nop()
	}

	return &ClientServices{
		SessionService: NewClientSessionService(serverAdapter, log),
		AppInfoService: NewAppInfoService(buildInfo),
	}, nil
}
