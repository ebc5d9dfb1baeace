package app

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/config"
	"github.com/banterhq/banter/internal/mock"
	"github.com/banterhq/banter/internal/ui"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	m := New(cfg, "test")
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// runCmd executes a command and feeds its message back into the model,
// mirroring what the Bubble Tea runtime does.
func runCmd(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	_, next := m.Update(msg)
	return next
}

func TestNew_StartsOnSidebar(t *testing.T) {
	m := newTestModel(t)

	if m.focus != FocusSidebar {
		t.Error("initial focus should be the sidebar")
	}
	if m.manager.Authenticated() {
		t.Error("fresh model should be signed out")
	}
}

func TestWindowSize_PropagatesToLayout(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.WindowSizeMsg{Width: 150, Height: 50})
	if m.tracker.TerminalWidth != 150 {
		t.Errorf("tracker width = %d, want 150", m.tracker.TerminalWidth)
	}
	if m.sidebar.Width() != 50 {
		t.Errorf("sidebar width = %d, want 50", m.sidebar.Width())
	}
}

func TestNewConversationKey(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	runCmd(t, m, cmd)

	if m.manager.Count() != 1 {
		t.Fatalf("conversation count = %d, want 1", m.manager.Count())
	}
	if m.focus != FocusChat {
		t.Error("focus should move to chat after creating a conversation")
	}
}

func TestTabRequiresConversation(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != FocusSidebar {
		t.Error("tab with no conversation should not switch focus")
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	runCmd(t, m, cmd)

	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if m.focus != FocusSidebar {
		t.Error("tab should cycle back to the sidebar")
	}
}

func TestMoodPickerFlow(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})
	if !m.modal.IsVisible() {
		t.Fatal("mood picker modal should be visible")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if m.modal.IsVisible() {
		t.Error("modal should close on confirm")
	}
	if got := m.config.GetDefaultMood(); got != mock.MoodFunny {
		t.Errorf("default mood = %q, want %q", got, mock.MoodFunny)
	}
}

func TestModalEscapeCloses(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: 'L', Text: "L"})
	if !m.modal.IsVisible() {
		t.Fatal("login modal should be visible")
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.modal.IsVisible() {
		t.Error("escape should close the modal")
	}
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.KeyPressMsg{Code: 'L', Text: "L"})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if !m.modal.IsVisible() {
		t.Error("modal should stay open for an empty token")
	}
	if m.modal.GetError() == "" {
		t.Error("empty token should set a modal error")
	}
}

func TestDeleteFlow(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	runCmd(t, m, cmd)

	// Back to sidebar, open the confirm modal, confirm.
	m.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	_, cmd = m.Update(tea.KeyPressMsg{Code: 'd', Text: "d"})
	if cmd != nil {
		t.Fatal("opening the confirm modal should not produce a command")
	}
	if !m.modal.IsVisible() {
		t.Fatal("delete confirm modal should be visible")
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	runCmd(t, m, cmd)

	if m.manager.Count() != 0 {
		t.Errorf("conversation count = %d after delete, want 0", m.manager.Count())
	}
}

func TestSendStartsWaiting(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	runCmd(t, m, cmd)

	m.chat.SetFocused(true)
	for _, r := range "hello" {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	next := runCmd(t, m, cmd) // beginSendCmd -> sendStartedMsg

	if !m.chat.IsWaiting() {
		t.Error("chat should show the waiting indicator after an optimistic send")
	}
	if next == nil {
		t.Error("send should schedule completion and stopwatch commands")
	}

	conv := m.manager.Current()
	if conv == nil || len(conv.Messages) != 1 {
		t.Fatalf("optimistic user message missing: %+v", conv)
	}
	if conv.Title != "hello..." {
		t.Errorf("title = %q, want derived from first message", conv.Title)
	}
}

func TestEmptyInputDoesNotSend(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	runCmd(t, m, cmd)

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with an empty input should be a no-op")
	}
}

func TestRemeasureMsgReappliesLayout(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.Update(ui.RemeasureMsg{})
	_ = cmd

	if m.sidebar.Width() != m.tracker.SidebarWidth {
		t.Error("layout out of sync after remeasure")
	}
}
