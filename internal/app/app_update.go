package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/keys"
	"github.com/banterhq/banter/internal/logger"
	"github.com/banterhq/banter/internal/notification"
	"github.com/banterhq/banter/internal/ui"
)

// Update routes all messages to the appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if cmd := m.tracker.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, tea.Batch(cmds...)

	case ui.RemeasureMsg:
		m.updateSizes()
		return m, tea.Batch(cmds...)

	case tea.FocusMsg:
		m.windowFocused = true
		return m, tea.Batch(cmds...)

	case tea.BlurMsg:
		m.windowFocused = false
		return m, tea.Batch(cmds...)

	case tea.KeyPressMsg:
		if model, cmd := m.handleKeyPress(msg); model != nil {
			return model, cmd
		}
		// Not handled globally; falls through to the focused panel below.

	case sessionsLoadedMsg:
		return m.handleSessionsLoaded(msg)

	case conversationCreatedMsg:
		return m.handleConversationCreated(msg)

	case conversationSelectedMsg:
		m.refresh()
		return m, nil

	case sendStartedMsg:
		return m.handleSendStarted(msg)

	case sendFinishedMsg:
		return m.handleSendFinished(msg)

	case conversationDeletedMsg:
		m.refresh()
		return m, nil
	}

	// Modal swallows everything else while visible
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}

	// Tick messages go to both panels regardless of focus
	switch msg.(type) {
	case ui.SidebarTickMsg:
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	case ui.StopwatchTickMsg:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		return m, cmd
	}

	// Remaining messages go to the focused panel
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		cmds = append(cmds, cmd)
	} else {
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress handles global and focus-dependent keys. Returning a nil
// model passes the key through to the focused panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch key {
	case keys.Tab:
		if m.manager.Current() != nil {
			m.toggleFocus()
		}
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleChatKey(msg)
}

func (m *Model) handleSidebarKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "n":
		return m, m.createConversationCmd()
	case "d":
		if conv := m.sidebar.SelectedConversation(); conv != nil {
			m.modal.Show(ui.NewConfirmDeleteState(conv.ID, conv.Title))
		}
		return m, nil
	case "m":
		m.modal.Show(ui.NewMoodPickerState(m.config.GetDefaultMood()))
		return m, nil
	case "L", "shift+l":
		if m.manager.Authenticated() {
			return m, m.signOut()
		}
		m.modal.Show(ui.NewLoginState())
		return m, nil
	case keys.Enter:
		if conv := m.sidebar.SelectedConversation(); conv != nil {
			m.focus = FocusChat
			m.applyFocus()
			return m, m.selectConversationCmd(conv.ID)
		}
		return m, nil
	}
	return nil, nil
}

func (m *Model) handleChatKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Enter:
		content := strings.TrimSpace(m.chat.InputValue())
		if content == "" {
			return m, nil
		}
		m.chat.ClearInput()
		return m, m.beginSendCmd(content, m.config.GetDefaultMood())
	case keys.Escape:
		m.focus = FocusSidebar
		m.applyFocus()
		return m, nil
	}
	return nil, nil
}

func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.confirmModal()
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// confirmModal applies the action of whichever modal is open.
func (m *Model) confirmModal() (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *ui.LoginState:
		token := strings.TrimSpace(state.GetToken())
		if token == "" {
			m.modal.SetError("Token cannot be empty")
			return m, nil
		}
		m.modal.Hide()
		return m, m.signIn(token)
	case *ui.MoodPickerState:
		m.config.SetDefaultMood(state.SelectedMood())
		if err := m.config.Save(); err != nil {
			logger.WithComponent("app").Error("saving config failed", "error", err)
		}
		m.modal.Hide()
		return m, nil
	case *ui.ConfirmDeleteState:
		id := state.ConversationID
		m.modal.Hide()
		return m, m.deleteConversationCmd(id)
	}
	m.modal.Hide()
	return m, nil
}

// signIn stores the token, points the API client at it, and loads sessions.
func (m *Model) signIn(token string) tea.Cmd {
	m.config.SetAuthToken(token)
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("saving config failed", "error", err)
	}
	m.client.SetToken(token)
	m.sidebar.SetLoading(true)
	return tea.Batch(m.loadSessionsCmd(), ui.SidebarTick())
}

// signOut clears the token and drops remote conversations.
func (m *Model) signOut() tea.Cmd {
	m.config.SetAuthToken("")
	if err := m.config.Save(); err != nil {
		logger.WithComponent("app").Error("saving config failed", "error", err)
	}
	m.client.SetToken("")
	m.manager.Logout()
	m.refresh()
	return nil
}

func (m *Model) toggleFocus() {
	if m.focus == FocusSidebar {
		m.focus = FocusChat
	} else {
		m.focus = FocusSidebar
	}
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.chat.SetFocused(m.focus == FocusChat)
}

func (m *Model) handleSessionsLoaded(msg sessionsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.WithComponent("app").Error("session load failed", "error", msg.err)
	}
	m.refresh()
	return m, nil
}

func (m *Model) handleConversationCreated(msg conversationCreatedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.WithComponent("app").Error("create failed", "error", msg.err)
		return m, nil
	}
	m.refresh()
	m.focus = FocusChat
	m.applyFocus()
	return m, nil
}

func (m *Model) handleSendStarted(msg sendStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		logger.WithComponent("app").Error("send failed to start", "error", msg.err)
		return m, nil
	}
	m.refresh()
	m.chat.SetWaiting(true)
	m.pendingSends[msg.token.ConversationID] = true
	m.sidebar.SetPending(m.pendingSends)
	return m, tea.Batch(m.completeSendCmd(msg.token), ui.StopwatchTick(), ui.SidebarTick())
}

func (m *Model) handleSendFinished(msg sendFinishedMsg) (tea.Model, tea.Cmd) {
	m.chat.SetWaiting(false)
	delete(m.pendingSends, msg.conversationID)
	m.sidebar.SetPending(m.pendingSends)
	m.refresh()

	if msg.err != nil {
		logger.WithComponent("app").Error("send failed", "conversationID", msg.conversationID, "error", msg.err)
		return m, nil
	}

	if !m.windowFocused && m.config.GetNotificationsEnabled() {
		title := ""
		if conv := m.manager.Current(); conv != nil && conv.ID == msg.conversationID {
			title = conv.Title
		}
		if err := notification.ReplyReceived(title); err != nil {
			logger.WithComponent("app").Debug("notification failed", "error", err)
		}
	}
	return m, nil
}
