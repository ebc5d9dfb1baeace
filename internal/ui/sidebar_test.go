package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/banterhq/banter/internal/chat"
)

func testSidebar() *Sidebar {
	tr := NewViewportTracker()
	tr.Activate()
	s := NewSidebar(tr)
	s.SetSize(tr.SidebarWidth, tr.ContentHeight)
	return s
}

func conversationsNamed(ids ...string) []*chat.Conversation {
	out := make([]*chat.Conversation, len(ids))
	for i, id := range ids {
		out[i] = &chat.Conversation{ID: id, Title: "Chat " + id}
	}
	return out
}

func TestSidebar_Navigation(t *testing.T) {
	s := testSidebar()
	s.SetFocused(true)
	s.SetConversations(conversationsNamed("a", "b", "c"))

	if got := s.SelectedConversation().ID; got != "a" {
		t.Fatalf("initial selection = %q, want %q", got, "a")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.SelectedConversation().ID; got != "b" {
		t.Errorf("after down, selection = %q, want %q", got, "b")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if got := s.SelectedConversation().ID; got != "a" {
		t.Errorf("selection = %q, want clamped at %q", got, "a")
	}
}

func TestSidebar_UnfocusedIgnoresKeys(t *testing.T) {
	s := testSidebar()
	s.SetConversations(conversationsNamed("a", "b"))

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if got := s.SelectedConversation().ID; got != "a" {
		t.Errorf("unfocused sidebar moved selection to %q", got)
	}
}

func TestSidebar_SetConversationsKeepsSelection(t *testing.T) {
	s := testSidebar()
	s.SetFocused(true)
	s.SetConversations(conversationsNamed("a", "b", "c"))
	s.SelectConversation("b")

	// New conversation prepended; "b" shifts down a slot.
	s.SetConversations(conversationsNamed("new", "a", "b", "c"))
	if got := s.SelectedConversation().ID; got != "b" {
		t.Errorf("selection = %q after list change, want %q", got, "b")
	}
}

func TestSidebar_SelectionFallsBackToHead(t *testing.T) {
	s := testSidebar()
	s.SetConversations(conversationsNamed("a", "b"))
	s.SelectConversation("b")

	s.SetConversations(conversationsNamed("a"))
	if got := s.SelectedConversation().ID; got != "a" {
		t.Errorf("selection = %q after removal, want head", got)
	}
}

func TestSidebar_ViewShowsLocalBadge(t *testing.T) {
	s := testSidebar()
	s.SetConversations([]*chat.Conversation{
		{ID: "local-123", Title: "Offline chat"},
		{ID: "7", Title: "Server chat"},
	})

	view := s.View()
	if !strings.Contains(view, "∅") {
		t.Error("view does not mark the local conversation")
	}
	if !strings.Contains(view, "Offline chat") {
		t.Error("view does not show the conversation title")
	}
}

func TestSidebar_ViewEmptyState(t *testing.T) {
	s := testSidebar()

	if !strings.Contains(s.View(), "No conversations") {
		t.Error("empty sidebar should show placeholder text")
	}
}

func TestSidebar_LoadingSpinner(t *testing.T) {
	s := testSidebar()
	s.SetLoading(true)

	if !strings.Contains(s.View(), "loading") {
		t.Error("loading sidebar should show spinner text")
	}

	_, cmd := s.Update(SidebarTickMsg{})
	if cmd == nil {
		t.Error("spinner tick should reschedule while loading")
	}

	s.SetLoading(false)
	_, cmd = s.Update(SidebarTickMsg{})
	if cmd != nil {
		t.Error("spinner tick should stop when not loading")
	}
}

func TestSidebar_PendingConversationSpinner(t *testing.T) {
	s := testSidebar()
	s.SetConversations(conversationsNamed("1", "2"))
	s.SetPending(map[string]bool{"1": true})

	_, cmd := s.Update(SidebarTickMsg{})
	if cmd == nil {
		t.Error("spinner tick should reschedule while a send is pending")
	}

	innerWidth := s.tracker.InnerWidth(s.Width())
	row := s.renderItem(s.conversations[0], false, innerWidth)
	frame := sidebarSpinnerFrames[s.spinnerFrame]
	if !strings.Contains(row, frame) {
		t.Errorf("pending row %q should contain spinner frame %q", row, frame)
	}

	s.SetPending(nil)
	_, cmd = s.Update(SidebarTickMsg{})
	if cmd != nil {
		t.Error("spinner tick should stop once nothing is pending")
	}
}

func TestSidebar_TruncatesLongTitles(t *testing.T) {
	s := testSidebar()
	innerWidth := s.tracker.InnerWidth(s.Width())
	conv := &chat.Conversation{ID: "local-1", Title: strings.Repeat("x", 200)}

	row := s.renderItem(conv, false, innerWidth)
	if got := lipgloss.Width(row); got > innerWidth {
		t.Errorf("row width = %d, want <= %d", got, innerWidth)
	}
	if !strings.Contains(row, "…") {
		t.Error("long title was not truncated with an ellipsis")
	}
}
