// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-journal-client/internal/adapter"
	"github.com/MKhiriev/go-journal-client/internal/app"
	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/mock"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestSessionSvc: хелпер для создания clientSessionService с моком адаптера
func newTestSessionSvc(t *testing.T) (*clientSessionService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientSessionService(mockAdapter, logger.Nop()).(*clientSessionService)
	return svc, mockAdapter
}

func loggedInSvc(t *testing.T, token string) (*clientSessionService, *mock.MockServerAdapter) {
	t.Helper()
	svc, mockAdapter := newTestSessionSvc(t)
	mockAdapter.EXPECT().Login(gomock.Any(), models.User{Username: "alice"}).Return(models.NewToken(token), nil)

	_, err := svc.Login(context.Background(), "alice")
	require.NoError(t, err)
	return svc, mockAdapter
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientSessionService_InitialState(t *testing.T) {
	svc, _ := newTestSessionSvc(t)

	assert.Equal(t, models.LoggedOut, svc.State())
	assert.True(t, svc.Token().IsZero())
	assert.Empty(t, svc.Username())
}

func TestClientSessionService_Login_Success_ThenOneEntriesRequest(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		mockAdapter.EXPECT().Login(gomock.Any(), models.User{Username: "alice"}).
			Return(models.NewToken("tok-123"), nil),
		mockAdapter.EXPECT().ListEntries(gomock.Any(), models.NewToken("tok-123")).
			Return([]models.Entry{{Title: "T"}}, nil).Times(1),
	)

	token, err := svc.Login(ctx, "  alice \t")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token.String())
	assert.Equal(t, models.LoggedIn, svc.State())
	assert.Equal(t, "alice", svc.Username())

	entries, err := svc.LoadEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestClientSessionService_Login_EmptyIdentifier_NoRequest(t *testing.T) {
	for _, identifier := range []string{"", "   ", "\t\n"} {
		svc, _ := newTestSessionSvc(t) // no EXPECT: any adapter call fails the test

		_, err := svc.Login(context.Background(), identifier)

		require.ErrorIs(t, err, ErrEmptyIdentifier)
		assert.Equal(t, app.MsgEmptyIdentifier, UserMessage(err))
		assert.Equal(t, models.LoggedOut, svc.State())
	}
}

func TestClientSessionService_Login_ServerMessage(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, adapter.NewHTTPError(http.StatusUnauthorized, "bad credentials"))

	_, err := svc.Login(context.Background(), "alice")

	require.ErrorIs(t, err, ErrAuth)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "bad credentials", UserMessage(err))
	assert.Equal(t, models.LoggedOut, svc.State())
	assert.True(t, svc.Token().IsZero())
}

func TestClientSessionService_Login_NoMessage_GenericFallback(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, adapter.NewHTTPError(http.StatusInternalServerError, ""))

	_, err := svc.Login(context.Background(), "alice")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, app.MsgLoginFailed, authErr.Msg)
	assert.Equal(t, models.LoggedOut, svc.State())
}

func TestClientSessionService_Login_TransportFailure(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Token{}, errors.Join(adapter.ErrTransport, errors.New("connection refused")))

	_, err := svc.Login(context.Background(), "alice")

	require.ErrorIs(t, err, ErrNetwork)
	assert.ErrorIs(t, err, adapter.ErrTransport)
	assert.Equal(t, app.MsgNetworkError, UserMessage(err))
	assert.Equal(t, models.LoggedOut, svc.State())
}

func TestClientSessionService_Login_MissingToken(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, nil)

	_, err := svc.Login(context.Background(), "alice")

	require.ErrorIs(t, err, ErrAuth)
	assert.Equal(t, app.MsgLoginFailed, UserMessage(err))
	assert.Equal(t, models.LoggedOut, svc.State())
}

func TestClientSessionService_Login_AlreadyLoggedIn(t *testing.T) {
	svc, _ := loggedInSvc(t, "tok")

	_, err := svc.Login(context.Background(), "bob")

	assert.ErrorIs(t, err, ErrAlreadyLoggedIn)
	assert.Equal(t, "alice", svc.Username())
}

func TestClientSessionService_Login_InFlightGuard(t *testing.T) {
	svc, mockAdapter := newTestSessionSvc(t)

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.User) (models.Token, error) {
			close(started)
			<-release
			return models.NewToken("tok"), nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Login(context.Background(), "alice")
		done <- err
	}()
	<-started

	_, err := svc.Login(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, models.LoggedIn, svc.State())
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestClientSessionService_Logout_ClearsSessionAndBlocksFetch(t *testing.T) {
	svc, _ := loggedInSvc(t, "tok")

	svc.Logout()

	assert.Equal(t, models.LoggedOut, svc.State())
	assert.True(t, svc.Token().IsZero())
	assert.Empty(t, svc.Username())

	// No ListEntries expectation: the fetch must not reach the adapter.
	_, err := svc.LoadEntries(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestClientSessionService_Logout_Idempotent(t *testing.T) {
	svc, _ := loggedInSvc(t, "tok")

	assert.NotPanics(t, func() {
		svc.Logout()
		svc.Logout()
	})
	assert.Equal(t, models.LoggedOut, svc.State())

	fresh, _ := newTestSessionSvc(t)
	assert.NotPanics(t, fresh.Logout)
}

func TestClientSessionService_Logout_DuringFetchDiscardsResult(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Token) ([]models.Entry, error) {
			close(started)
			<-release
			return []models.Entry{{Title: "late"}}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := svc.LoadEntries(context.Background())
		done <- err
	}()
	<-started
	svc.Logout()
	close(release)

	assert.ErrorIs(t, <-done, ErrSessionChanged)
}

func TestClientSessionService_ReloginDuringPendingFetch(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "old")

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().ListEntries(gomock.Any(), models.NewToken("old")).
		DoAndReturn(func(context.Context, models.Token) ([]models.Entry, error) {
			close(started)
			<-release
			return []models.Entry{{Title: "stale"}}, nil
		})

	oldDone := make(chan error, 1)
	go func() {
		_, err := svc.LoadEntries(context.Background())
		oldDone <- err
	}()
	<-started

	svc.Logout()

	mockAdapter.EXPECT().Login(gomock.Any(), models.User{Username: "bob"}).Return(models.NewToken("new"), nil)
	mockAdapter.EXPECT().ListEntries(gomock.Any(), models.NewToken("new")).
		Return([]models.Entry{{Title: "fresh", UserID: "2"}}, nil).Times(1)

	_, err := svc.Login(context.Background(), "bob")
	require.NoError(t, err)

	entries, err := svc.LoadEntries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Entry{{Title: "fresh", UserID: "2"}}, entries)

	close(release)
	assert.ErrorIs(t, <-oldDone, ErrSessionChanged)

	// the stale fetch finishing must not release or block the new session's guard
	mockAdapter.EXPECT().ListEntries(gomock.Any(), models.NewToken("new")).Return(nil, nil)
	_, err = svc.LoadEntries(context.Background())
	assert.NoError(t, err)
}

// ── LoadEntries ──────────────────────────────────────────────────────────────

func TestClientSessionService_LoadEntries_NotLoggedIn(t *testing.T) {
	svc, _ := newTestSessionSvc(t)

	_, err := svc.LoadEntries(context.Background())

	require.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Equal(t, app.MsgNotLoggedIn, UserMessage(err))
}

func TestClientSessionService_LoadEntries_PreservesOrder(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")
	want := []models.Entry{
		{Title: "b", Content: "2", UserID: "1"},
		{Title: "a", Content: "1", UserID: "1"},
	}
	mockAdapter.EXPECT().ListEntries(gomock.Any(), models.NewToken("tok")).Return(want, nil)

	got, err := svc.LoadEntries(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientSessionService_LoadEntries_NilBecomesEmpty(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")
	mockAdapter.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, nil)

	got, err := svc.LoadEntries(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClientSessionService_LoadEntries_ServerFailure(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")
	mockAdapter.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		Return(nil, adapter.NewHTTPError(http.StatusUnauthorized, "Token has expired"))

	_, err := svc.LoadEntries(context.Background())

	require.ErrorIs(t, err, ErrLoadEntries)
	assert.Equal(t, app.MsgLoadEntriesFailed, UserMessage(err))
	assert.Equal(t, models.LoggedIn, svc.State())
}

func TestClientSessionService_LoadEntries_TransportFailure(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")
	mockAdapter.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		Return(nil, adapter.ErrTransport)

	_, err := svc.LoadEntries(context.Background())

	require.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, app.MsgLoadEntriesNetworkError, UserMessage(err))
	assert.Equal(t, models.LoggedIn, svc.State())
}

func TestClientSessionService_LoadEntries_InFlightGuard(t *testing.T) {
	svc, mockAdapter := loggedInSvc(t, "tok")

	started := make(chan struct{})
	release := make(chan struct{})
	mockAdapter.EXPECT().ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.Token) ([]models.Entry, error) {
			close(started)
			<-release
			return nil, nil
		}).Times(1)

	done := make(chan error, 1)
	go func() {
		_, err := svc.LoadEntries(context.Background())
		done <- err
	}()
	<-started

	_, err := svc.LoadEntries(context.Background())
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	assert.NoError(t, <-done)
}

// ── UserMessage ──────────────────────────────────────────────────────────────

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, app.MsgRequestInFlight, UserMessage(ErrRequestInFlight))
	assert.Equal(t, app.MsgAlreadyLoggedIn, UserMessage(ErrAlreadyLoggedIn))
	assert.Equal(t, app.MsgSessionChanged, UserMessage(ErrSessionChanged))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
}
