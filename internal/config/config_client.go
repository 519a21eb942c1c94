// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultHTTPAddress is the journal service address used when none is
// configured.
const DefaultHTTPAddress = "http://localhost:5000"

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Username pre-fills the login form.
	Username string
	// LogFile is the log output path; empty selects the default.
	LogFile string
	// LogLevel is the parsed zerolog level.
	LogLevel zerolog.Level
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the timeout for outbound client requests.
	// Zero disables it.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	level := zerolog.DebugLevel
	if raw := strings.TrimSpace(cfg.App.LogLevel); raw != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, raw)
		}
		level = parsed
	}

	address := strings.TrimSpace(cfg.Adapter.HTTPAddress)
	if address == "" {
		address = DefaultHTTPAddress
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Username: strings.TrimSpace(cfg.App.Username),
			LogFile:  cfg.App.LogFile,
			LogLevel: level,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
