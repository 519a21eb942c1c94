// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while adding request/response logging shared by every adapter.
//
// Example usage:
//
//	client := utils.NewHTTPClient(log)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance. Each completed
// exchange is logged at debug level with method, path, status and latency;
// transport failures are logged at warn level. Request and response bodies
// and the Authorization header are never logged.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. A nil logger disables logging.
func NewHTTPClient(log *zerolog.Logger) *HTTPClient {
	client := resty.New()
	if log == nil {
		nop := zerolog.Nop()
		log = &nop
	}

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("path", resp.Request.URL).
			Str("request_id", resp.Request.Header.Get(RequestIDHeader)).
			Int("status", resp.StatusCode()).
			Dur("latency", resp.Time()).
			Msg("http exchange")
		return nil
	})
	client.OnError(func(req *resty.Request, err error) {
		log.Warn().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL).
			Str("request_id", req.Header.Get(RequestIDHeader)).
			Msg("http request failed")
	})

	return &HTTPClient{Client: client}
}
