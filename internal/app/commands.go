package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/chat"
)

// Commands wrap manager operations so they run off the update loop and
// report back as messages.

func (m *Model) loadSessionsCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionsLoadedMsg{err: m.manager.LoadSessions(m.ctx)}
	}
}

func (m *Model) createConversationCmd() tea.Cmd {
	return func() tea.Msg {
		conv, err := m.manager.Create(m.ctx)
		return conversationCreatedMsg{conversation: conv, err: err}
	}
}

func (m *Model) selectConversationCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return conversationSelectedMsg{id: id, err: m.manager.Select(m.ctx, id)}
	}
}

func (m *Model) beginSendCmd(content, mood string) tea.Cmd {
	return func() tea.Msg {
		token, err := m.manager.BeginSend(m.ctx, content, mood)
		return sendStartedMsg{token: token, err: err}
	}
}

func (m *Model) completeSendCmd(token *chat.SendToken) tea.Cmd {
	return func() tea.Msg {
		err := m.manager.CompleteSend(m.ctx, token)
		return sendFinishedMsg{conversationID: token.ConversationID, err: err}
	}
}

func (m *Model) deleteConversationCmd(id string) tea.Cmd {
	return func() tea.Msg {
		return conversationDeletedMsg{id: id, err: m.manager.Delete(m.ctx, id)}
	}
}
