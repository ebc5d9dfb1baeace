package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/banterhq/banter/internal/chat"
)

// sidebarSpinnerFrames shimmer while the session list is loading
var sidebarSpinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// SidebarTickMsg is sent to advance the spinner animation
type SidebarTickMsg time.Time

// Sidebar represents the left panel with the conversation list
type Sidebar struct {
	tracker       *ViewportTracker
	conversations []*chat.Conversation
	selectedIdx   int
	width         int
	height        int
	focused       bool
	scrollOffset  int
	loading       bool
	pending       map[string]bool
	spinnerFrame  int
}

// NewSidebar creates a new sidebar
func NewSidebar(tracker *ViewportTracker) *Sidebar {
	return &Sidebar{tracker: tracker}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetLoading toggles the loading spinner
func (s *Sidebar) SetLoading(loading bool) {
	s.loading = loading
}

// SetPending marks conversations that are waiting on a reply. Pending rows
// show an animated spinner while the tick command runs.
func (s *Sidebar) SetPending(ids map[string]bool) {
	s.pending = ids
}

// SetConversations replaces the displayed list, keeping the selection on the
// same conversation when it survives the change.
func (s *Sidebar) SetConversations(conversations []*chat.Conversation) {
	selectedID := ""
	if s.selectedIdx >= 0 && s.selectedIdx < len(s.conversations) {
		selectedID = s.conversations[s.selectedIdx].ID
	}

	s.conversations = conversations

	s.selectedIdx = 0
	for i, c := range conversations {
		if c.ID == selectedID {
			s.selectedIdx = i
			break
		}
	}
	s.clampScroll()
}

// SelectConversation moves the cursor to the conversation with the given id
func (s *Sidebar) SelectConversation(id string) {
	for i, c := range s.conversations {
		if c.ID == id {
			s.selectedIdx = i
			s.ensureVisible()
			return
		}
	}
}

// SelectedConversation returns the conversation under the cursor, or nil
func (s *Sidebar) SelectedConversation() *chat.Conversation {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.conversations) {
		return nil
	}
	return s.conversations[s.selectedIdx]
}

// SidebarTick returns a command that advances the spinner
func SidebarTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(t time.Time) tea.Msg {
		return SidebarTickMsg(t)
	})
}

// Update handles navigation keys and spinner ticks
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	switch msg := msg.(type) {
	case SidebarTickMsg:
		if s.loading || len(s.pending) > 0 {
			s.spinnerFrame = (s.spinnerFrame + 1) % len(sidebarSpinnerFrames)
			return s, SidebarTick()
		}
		return s, nil
	case tea.KeyPressMsg:
		if !s.focused {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.selectedIdx > 0 {
				s.selectedIdx--
				s.ensureVisible()
			}
		case "down", "j":
			if s.selectedIdx < len(s.conversations)-1 {
				s.selectedIdx++
				s.ensureVisible()
			}
		}
	}
	return s, nil
}

func (s *Sidebar) visibleHeight() int {
	h := s.tracker.InnerHeight(s.height)
	if h < 1 {
		h = 1
	}
	return h
}

func (s *Sidebar) ensureVisible() {
	visible := s.visibleHeight()
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	} else if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
	s.clampScroll()
}

func (s *Sidebar) clampScroll() {
	maxScroll := len(s.conversations) - s.visibleHeight()
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := s.tracker.InnerWidth(s.width)
	innerHeight := s.visibleHeight()

	var lines []string

	if s.loading {
		frame := sidebarSpinnerFrames[s.spinnerFrame]
		lines = append(lines, StatusLoadingStyle.Render(" "+frame+" loading..."))
	} else if len(s.conversations) == 0 {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(" No conversations."))
	} else {
		for i, conv := range s.conversations {
			if i < s.scrollOffset {
				continue
			}
			if len(lines) >= innerHeight {
				break
			}
			lines = append(lines, s.renderItem(conv, i == s.selectedIdx, innerWidth))
		}
	}

	content := strings.Join(lines, "\n")
	return style.Width(s.width).Height(s.height).Render(content)
}

// renderItem renders one conversation row, truncated to fit the panel
func (s *Sidebar) renderItem(conv *chat.Conversation, selected bool, innerWidth int) string {
	prefix := "  "
	itemStyle := SidebarItemStyle
	if selected {
		prefix = "> "
		itemStyle = SidebarSelectedStyle
	}

	badge := ""
	if s.pending[conv.ID] {
		badge = " " + sidebarSpinnerFrames[s.spinnerFrame]
	} else if conv.IsLocal() {
		badge = " ∅"
	}

	// Room for the item style's padding and the badge
	maxTitle := innerWidth - len(prefix) - runewidth.StringWidth(badge) - 2
	if maxTitle < 1 {
		maxTitle = 1
	}
	title := runewidth.Truncate(conv.Title, maxTitle, "…")

	row := prefix + title
	if badge != "" {
		row += SidebarLocalBadgeStyle.Render(badge)
	}
	return itemStyle.Width(innerWidth).Render(row)
}
