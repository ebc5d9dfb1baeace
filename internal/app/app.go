// Package app wires the chat manager, config, and UI panels into the main
// Bubble Tea model.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/api"
	"github.com/banterhq/banter/internal/chat"
	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/logger"
	"github.com/banterhq/banter/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)

	client  *api.Client
	manager *chat.Manager

	tracker *ui.ViewportTracker
	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	chat    *ui.ChatPanel
	modal   *ui.Modal

	width  int
	height int
	focus  Focus

	windowFocused bool
	pendingSends  map[string]bool

	ctx context.Context
}

// sessionsLoadedMsg is sent when a remote session load finishes
type sessionsLoadedMsg struct {
	err error
}

// conversationCreatedMsg is sent when a create operation finishes
type conversationCreatedMsg struct {
	conversation *chat.Conversation
	err          error
}

// conversationSelectedMsg is sent when a select operation finishes
type conversationSelectedMsg struct {
	id  string
	err error
}

// sendStartedMsg carries the token of an optimistically applied send
type sendStartedMsg struct {
	token *chat.SendToken
	err   error
}

// sendFinishedMsg is sent when the reply arrived or the send rolled back
type sendFinishedMsg struct {
	conversationID string
	err            error
}

// conversationDeletedMsg is sent when a delete operation finishes
type conversationDeletedMsg struct {
	id  string
	err error
}

// New creates the app model
func New(cfg *config.Config, version string) *Model {
	client := api.NewClient(cfg.GetAPIBaseURL(), cfg.GetAuthToken())
	tracker := ui.NewViewportTracker()

	ui.SetThemeByName(cfg.GetTheme())

	return &Model{
		config:        cfg,
		version:       version,
		client:        client,
		manager:       chat.NewManager(client),
		tracker:       tracker,
		header:        ui.NewHeader(),
		footer:        ui.NewFooter(),
		sidebar:       ui.NewSidebar(tracker),
		chat:          ui.NewChatPanel(tracker),
		modal:         ui.NewModal(),
		focus:         FocusSidebar,
		windowFocused: true,
		pendingSends:  make(map[string]bool),
		ctx:           context.Background(),
	}
}

// Init starts viewport tracking and, when a token is stored, the initial
// session load.
func (m *Model) Init() tea.Cmd {
	logger.WithComponent("app").Info("starting", "version", m.version)

	m.tracker.Activate()
	m.updateSizes()
	m.applyFocus()

	var cmds []tea.Cmd
	if m.config.IsAuthenticated() {
		m.sidebar.SetLoading(true)
		cmds = append(cmds, m.loadSessionsCmd(), ui.SidebarTick())
	}
	return tea.Batch(cmds...)
}

// refresh pushes manager state into the UI panels
func (m *Model) refresh() {
	conversations := m.manager.Conversations()
	m.sidebar.SetConversations(conversations)
	m.sidebar.SelectConversation(m.manager.CurrentID())
	m.sidebar.SetLoading(m.manager.Loading())

	current := m.manager.Current()
	m.chat.SetConversation(current)

	title := ""
	if current != nil {
		title = current.Title
	}
	m.header.SetConversationTitle(title)
	m.header.SetMood(m.config.GetDefaultMood())
	m.header.SetAuthenticated(m.manager.Authenticated())
}
