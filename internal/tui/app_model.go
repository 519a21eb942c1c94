// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-client/internal/logger"
	"github.com/MKhiriev/go-journal-client/internal/service"
	"github.com/MKhiriev/go-journal-client/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLogin screen = iota
	screenList
)

// statusTTL is how long a transient status line stays visible.
const statusTTL = 2 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type appModel struct {
	ctx       context.Context
	session   service.ClientSessionService
	buildInfo models.AppBuildInfo
	log       *logger.Logger

	currentScreen screen
	login         loginModel
	list          listModel

	showBuildInfo bool
	quitByUser    bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, username string, log *logger.Logger) appModel {
	return appModel{
		ctx:           ctx,
		session:       services.SessionService,
		buildInfo:     services.AppInfoService.GetBuildInfo(),
		log:           log,
		currentScreen: screenLogin,
		login:         newLoginModel(username),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQ) {
			m.quitByUser = true
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.list = m.list.resize(msg.Width, msg.Height).refreshContent()
		return m, nil
	case loginDoneMsg:
		return m.handleLoginDone(msg)
	case entriesLoadedMsg:
		return m.handleEntriesLoaded(msg)
	case copiedMsg:
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.list.status = "Copy failed."
		m.log.Warn().Err(msg.err).Msg("clipboard write failed")
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	}

	switch m.currentScreen {
	case screenLogin:
		return m.updateLogin(msg)
	case screenList:
		return m.updateList(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = overlayBoxStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case m.currentScreen == screenLogin:
		body = m.login.View()
	default:
		body = m.list.View()
	}

	return appStyle.Render(body)
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.enter) {
		if m.login.submitting {
			return m, nil
		}
		m.login.errMsg = ""
		m.login.submitting = true
		return m, tea.Batch(m.login.spinner.Tick, m.cmdLogin(m.login.input.Value()))
	}

	var cmd tea.Cmd
	m.login.input, cmd = m.login.input.Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list.viewport, cmd = m.list.viewport.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
			m.list = m.list.refreshContent()
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
			m.list = m.list.refreshContent()
		}
	case key.Matches(keyMsg, keys.pgUp), key.Matches(keyMsg, keys.pgDown):
		var cmd tea.Cmd
		m.list.viewport, cmd = m.list.viewport.Update(msg)
		return m, cmd
	case key.Matches(keyMsg, keys.refresh):
		return m.startLoading()
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.list.current()
		if !ok || item.Content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Content)
	case key.Matches(keyMsg, keys.logout):
		m.session.Logout()
		m.list = newListModel().resize(m.list.viewport.Width+4, m.list.viewport.Height+chrome)
		m.login = m.login.reset()
		m.currentScreen = screenLogin
		return m, nil
	case key.Matches(keyMsg, keys.info):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) handleLoginDone(msg loginDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	if msg.err != nil {
		m.login.errMsg = humanize(msg.err)
		return m, nil
	}

	m.login.errMsg = ""
	m.list.username = m.session.Username()
	m.list.tokenInfo = tokenSummary(msg.token)
	m.currentScreen = screenList
	return m.startLoading()
}

func (m appModel) startLoading() (tea.Model, tea.Cmd) {
	if m.list.loading {
		return m, nil
	}

	m.list.loading = true
	m.list.errMsg = ""
	m.list = m.list.refreshContent()
	return m, tea.Batch(m.list.spinner.Tick, m.cmdLoadEntries())
}

func (m appModel) handleEntriesLoaded(msg entriesLoadedMsg) (tea.Model, tea.Cmd) {
	// A result of a session that has since been logged out is dropped.
	if errors.Is(msg.err, service.ErrSessionChanged) || m.currentScreen != screenList {
		return m, nil
	}

	m.list.loading = false
	m.list.loaded = true
	if msg.err != nil {
		m.list.items = nil
		m.list.idx = 0
		m.list.errMsg = humanize(msg.err)
		m.list = m.list.refreshContent()
		return m, nil
	}

	m.list.errMsg = ""
	m.list.items = msg.items
	if m.list.idx >= len(m.list.items) {
		m.list.idx = len(m.list.items) - 1
	}
	if m.list.idx < 0 {
		m.list.idx = 0
	}
	m.list = m.list.refreshContent()
	m.list.viewport.GotoTop()
	return m, nil
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.login.submitting {
		var cmd tea.Cmd
		m.login.spinner, cmd = m.login.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.list.loading {
		var cmd tea.Cmd
		m.list.spinner, cmd = m.list.spinner.Update(msg)
		m.list = m.list.refreshContent()
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) cmdLogin(identifier string) tea.Cmd {
	ctx := m.ctx
	svc := m.session
	return func() tea.Msg {
		token, err := svc.Login(ctx, identifier)
		return loginDoneMsg{token: token, err: err}
	}
}

func (m appModel) cmdLoadEntries() tea.Cmd {
	ctx := m.ctx
	svc := m.session
	return func() tea.Msg {
		items, err := svc.LoadEntries(ctx)
		return entriesLoadedMsg{items: items, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
