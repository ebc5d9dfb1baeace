package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.header.SetWidth(m.tracker.TerminalWidth)
	m.footer.SetWidth(m.tracker.TerminalWidth)
	m.sidebar.SetSize(m.tracker.SidebarWidth, m.tracker.ContentHeight)
	m.chat.SetSize(m.tracker.ChatWidth, m.tracker.ContentHeight)
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.ReportFocus = true

	if m.tracker.TerminalWidth == 0 || m.tracker.TerminalHeight == 0 {
		v.SetContent("Loading...")
		return v
	}

	hasConversation := m.manager.Current() != nil
	m.footer.SetContext(
		hasConversation,
		m.focus == FocusSidebar,
		m.chat.IsWaiting(),
		m.manager.Authenticated(),
	)

	header := m.header.View()
	footer := m.footer.View()

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		m.chat.View(),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		panels,
		footer,
	)

	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.tracker.TerminalWidth, m.tracker.TerminalHeight))
		return v
	}

	v.SetContent(view)
	return v
}
