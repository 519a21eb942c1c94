// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-journal-client/internal/config"
	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/utils"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/go-resty/resty/v2"
)

const (
	loginPath   = "/login"
	entriesPath = "/entries"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A zero timeout means requests wait until the server answers or the
// caller's context is cancelled.
//
// Every outgoing request is tagged with an X-Request-ID header taken from the
// request context (see [utils.WithRequestID]) or freshly generated.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient(&logger.Logger)
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		OnBeforeRequest(tagRequestID)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func tagRequestID(_ *resty.Client, r *resty.Request) error {
	if r.Header.Get(utils.RequestIDHeader) != "" {
		return nil
	}
	r.SetHeader(utils.RequestIDHeader, utils.RequestIDFromContext(r.Context()))
	return nil
}

// Login implements [ServerAdapter]. It POSTs {"username": ...} to POST /login
// and returns the access_token of the success body. A success body without
// access_token yields a zero [models.Token]; callers decide how to treat it.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(loginPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	var body models.LoginResponse
	if err = decodeBody(resp.Body(), &body); err != nil {
		return models.Token{}, fmt.Errorf("decode login response: %w", err)
	}

	return models.NewToken(body.AccessToken), nil
}

// ListEntries implements [ServerAdapter]. It GETs /entries with token as a
// bearer credential and returns the decoded items, preserving server order.
func (h *httpServerAdapter) ListEntries(ctx context.Context, token models.Token) ([]models.Entry, error) {
	resp, err := h.authedRequest(ctx, token).Get(entriesPath)
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body models.EntriesResponse
	if err = decodeBody(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("decode entries response: %w", err)
	}
	if body.Items == nil {
		return []models.Entry{}, nil
	}

	h.logger.Debug().Int("count", len(body.Items)).Msg("entries received")
	return body.Items, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token models.Token) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if !token.IsZero() {
		req.SetHeader("Authorization", token.BearerHeader())
	}
	return req
}

// decodeBody treats an empty 2xx body as "{}" so that missing fields
// degrade to zero values.
func decodeBody(body []byte, v any) error {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
