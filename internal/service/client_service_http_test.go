// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-journal-client/internal/adapter"
	"github.com/MKhiriev/go-journal-client/internal/config"
	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeJournal is an in-memory journal service speaking the same REST
// contract as the real one.
type fakeJournal struct {
	users   map[string]string // username -> token
	entries map[string][]map[string]any

	loginCalls   atomic.Int32
	entriesCalls atomic.Int32
}

func (f *fakeJournal) router() http.Handler {
	r := chi.NewRouter()
	r.Post("/login", f.login)
	r.Get("/entries", f.list)
	return r
}

func (f *fakeJournal) login(w http.ResponseWriter, r *http.Request) {
	f.loginCalls.Add(1)

	var req struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"msg": "Missing JSON in request"})
		return
	}
	token, ok := f.users[req.Username]
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Bad username"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}

func (f *fakeJournal) list(w http.ResponseWriter, r *http.Request) {
	f.entriesCalls.Add(1)

	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Missing Authorization Header"})
		return
	}
	for user, t := range f.users {
		if t == token {
			writeJSON(w, http.StatusOK, map[string]any{"items": f.entries[user]})
			return
		}
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"msg": "Invalid token"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newJournalSession(t *testing.T, journal *fakeJournal) ClientSessionService {
	t.Helper()

	srv := httptest.NewServer(journal.router())
	t.Cleanup(srv.Close)

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL}, logger.Nop())
	require.NoError(t, err)

	return NewClientSessionService(a, logger.Nop())
}

func TestClientSessionService_HTTP_LoginAndLoadEntries(t *testing.T) {
	journal := &fakeJournal{
		users: map[string]string{"alice": "tok-alice"},
		entries: map[string][]map[string]any{
			"alice": {
				{"title": "T", "content": "C", "user_id": 1},
				{"title": "<b>x</b>", "content": "", "user_id": 1},
			},
		},
	}
	s := newJournalSession(t, journal)

	token, err := s.Login(context.Background(), "  alice ")
	require.NoError(t, err)
	assert.Equal(t, "tok-alice", token.String())
	assert.Equal(t, models.LoggedIn, s.State())
	assert.Equal(t, "alice", s.Username())

	entries, err := s.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Entry{
		{Title: "T", Content: "C", UserID: "1"},
		{Title: "<b>x</b>", Content: "", UserID: "1"},
	}, entries)
}

func TestClientSessionService_HTTP_LoginRejected(t *testing.T) {
	journal := &fakeJournal{users: map[string]string{}}
	s := newJournalSession(t, journal)

	_, err := s.Login(context.Background(), "mallory")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "Bad username", authErr.Msg)
	assert.Equal(t, "Bad username", UserMessage(err))
	assert.Equal(t, models.LoggedOut, s.State())
	assert.True(t, s.Token().IsZero())
}

func TestClientSessionService_HTTP_EmptyIdentifierMakesNoRequest(t *testing.T) {
	journal := &fakeJournal{users: map[string]string{"alice": "t"}}
	s := newJournalSession(t, journal)

	_, err := s.Login(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyIdentifier)
	assert.Zero(t, journal.loginCalls.Load())
}

func TestClientSessionService_HTTP_NoEntriesRequestWhenLoggedOut(t *testing.T) {
	journal := &fakeJournal{users: map[string]string{"alice": "t"}}
	s := newJournalSession(t, journal)

	_, err := s.LoadEntries(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = s.Login(context.Background(), "alice")
	require.NoError(t, err)
	s.Logout()
	s.Logout()

	_, err = s.LoadEntries(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Zero(t, journal.entriesCalls.Load())
}

func TestClientSessionService_HTTP_EmptyEntryList(t *testing.T) {
	journal := &fakeJournal{users: map[string]string{"bob": "tok-bob"}}
	s := newJournalSession(t, journal)

	_, err := s.Login(context.Background(), "bob")
	require.NoError(t, err)

	entries, err := s.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClientSessionService_HTTP_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: url}, logger.Nop())
	require.NoError(t, err)
	s := NewClientSessionService(a, logger.Nop())

	_, err = s.Login(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, "Network error.", UserMessage(err))
	assert.Equal(t, models.LoggedOut, s.State())
}
