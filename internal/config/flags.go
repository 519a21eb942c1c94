// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses all configuration flags from args into a fresh
// [StructuredConfig]. Unset flags leave their fields zero so that the
// merge step keeps values from lower-priority sources.
//
// Flags:
//
//	-a journal service address (e.g. http://localhost:5000 or host:port)
//	-u username to pre-fill on the login screen
//	-request-timeout request timeout (e.g., "30s", "1m"); 0 disables it
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("journal-client", flag.ContinueOnError)

	var address string
	var username string
	var requestTimeout time.Duration
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs.StringVar(&address, "a", "", "Journal service address")
	fs.StringVar(&username, "u", "", "Username to pre-fill")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Username: username,
			LogFile:  logFile,
			LogLevel: logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
