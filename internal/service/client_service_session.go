// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-journal-client/internal/adapter"
	"github.com/MKhiriev/go-journal-client/internal/app"
	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/utils"
	"github.com/MKhiriev/go-journal-client/models"
)

// session is the single mutable state of the client. generation changes on
// every login and logout so that late responses can be recognised.
type session struct {
	state      models.SessionState
	token      models.Token
	username   string
	generation uint64
}

// fetchGuard marks the session generation that owns the outstanding
// entries request. A fetch of an older generation does not block a newer
// session.
type fetchGuard struct {
	active     bool
	generation uint64
}

type clientSessionService struct {
	adapter adapter.ServerAdapter

	mu      sync.RWMutex
	session session

	loginInFlight atomic.Bool
	fetch         fetchGuard

	logger *logger.Logger
}

// NewClientSessionService returns a session service in the LoggedOut state.
func NewClientSessionService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{adapter: serverAdapter, logger: logger}
}

func (s *clientSessionService) Login(ctx context.Context, identifier string) (models.Token, error) {
	username := strings.TrimSpace(identifier)
	if username == "" {
		return models.Token{}, ErrEmptyIdentifier
	}

	if s.State() == models.LoggedIn {
		return models.Token{}, ErrAlreadyLoggedIn
	}

	if !s.loginInFlight.CompareAndSwap(false, true) {
		return models.Token{}, ErrRequestInFlight
	}
	defer s.loginInFlight.Store(false)

	ctx, requestID := utils.WithRequestID(ctx)
	log := s.logger.With().Str("request_id", requestID).Str("username", username).Logger()

	token, err := s.adapter.Login(ctx, models.User{Username: username})
	if err != nil {
		mapped := mapLoginError(err)
		log.Warn().Err(err).Msg("login rejected")
		return models.Token{}, mapped
	}
	if token.IsZero() {
		log.Warn().Msg("login succeeded without access token")
		return models.Token{}, &AuthError{Msg: app.MsgLoginFailed}
	}

	s.mu.Lock()
	s.session = session{
		state:      models.LoggedIn,
		token:      token,
		username:   username,
		generation: s.session.generation + 1,
	}
	s.mu.Unlock()

	log.Info().Msg("logged in")
	return token, nil
}

func (s *clientSessionService) Logout() {
	s.mu.Lock()
	wasLoggedIn := s.session.state == models.LoggedIn
	s.session = session{generation: s.session.generation + 1}
	s.mu.Unlock()

	if wasLoggedIn {
		s.logger.Info().Msg("logged out")
	}
}

func (s *clientSessionService) LoadEntries(ctx context.Context) ([]models.Entry, error) {
	s.mu.Lock()
	current := s.session
	if current.state != models.LoggedIn || current.token.IsZero() {
		s.mu.Unlock()
		return nil, ErrNotLoggedIn
	}
	if s.fetch.active && s.fetch.generation == current.generation {
		s.mu.Unlock()
		return nil, ErrRequestInFlight
	}
	s.fetch = fetchGuard{active: true, generation: current.generation}
	s.mu.Unlock()
	defer s.releaseFetch(current.generation)

	ctx, requestID := utils.WithRequestID(ctx)
	log := s.logger.With().Str("request_id", requestID).Logger()

	entries, err := s.adapter.ListEntries(ctx, current.token)

	if s.generation() != current.generation {
		log.Debug().Msg("discarding entries of a finished session")
		return nil, ErrSessionChanged
	}

	if err != nil {
		log.Warn().Err(err).Msg("load entries failed")
		return nil, mapEntriesError(err)
	}
	if entries == nil {
		entries = []models.Entry{}
	}

	log.Info().Int("count", len(entries)).Msg("entries loaded")
	return entries, nil
}

func (s *clientSessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.state
}

func (s *clientSessionService) Token() models.Token {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.token
}

func (s *clientSessionService) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.username
}

func (s *clientSessionService) releaseFetch(generation uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetch.generation == generation {
		s.fetch = fetchGuard{}
	}
}

func (s *clientSessionService) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.generation
}
