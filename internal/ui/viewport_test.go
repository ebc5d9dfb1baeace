package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestViewportTracker_ActivateUsesFallback(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()

	if tr.TerminalWidth != FallbackTerminalWidth || tr.TerminalHeight != FallbackTerminalHeight {
		t.Errorf("size = %dx%d, want fallback %dx%d",
			tr.TerminalWidth, tr.TerminalHeight, FallbackTerminalWidth, FallbackTerminalHeight)
	}
	if tr.ContentHeight != FallbackTerminalHeight-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight = %d", tr.ContentHeight)
	}
}

func TestViewportTracker_WindowSize(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()

	cmd := tr.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd == nil {
		t.Error("expected a settle re-measure to be scheduled")
	}

	if tr.TerminalWidth != 120 || tr.TerminalHeight != 40 {
		t.Errorf("size = %dx%d, want 120x40", tr.TerminalWidth, tr.TerminalHeight)
	}
	if tr.SidebarWidth != 40 {
		t.Errorf("SidebarWidth = %d, want 40", tr.SidebarWidth)
	}
	if tr.ChatWidth != 80 {
		t.Errorf("ChatWidth = %d, want 80", tr.ChatWidth)
	}
	if tr.ContentHeight != 38 {
		t.Errorf("ContentHeight = %d, want 38", tr.ContentHeight)
	}
}

func TestViewportTracker_ClampsTinyTerminal(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()

	tr.Update(tea.WindowSizeMsg{Width: 5, Height: 3})

	if tr.TerminalWidth != MinTerminalWidth || tr.TerminalHeight != MinTerminalHeight {
		t.Errorf("size = %dx%d, want clamped to %dx%d",
			tr.TerminalWidth, tr.TerminalHeight, MinTerminalWidth, MinTerminalHeight)
	}
}

func TestViewportTracker_FocusSchedulesRemeasure(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()

	if cmd := tr.Update(tea.FocusMsg{}); cmd == nil {
		t.Error("focus should schedule a re-measure")
	}
	if cmd := tr.Update(tea.BlurMsg{}); cmd == nil {
		t.Error("blur should schedule a re-measure")
	}
}

func TestViewportTracker_StaleRemeasureDropped(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()
	tr.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	staleGen := tr.generation
	tr.Deactivate()
	tr.Activate()
	tr.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// A tick from the earlier activation must not disturb current state.
	tr.Update(RemeasureMsg{generation: staleGen})
	if tr.TerminalWidth != 120 || tr.TerminalHeight != 40 {
		t.Errorf("size = %dx%d after stale remeasure, want 120x40",
			tr.TerminalWidth, tr.TerminalHeight)
	}
}

func TestViewportTracker_InactiveIgnoresMessages(t *testing.T) {
	tr := NewViewportTracker()
	tr.Activate()
	tr.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	tr.Deactivate()

	if cmd := tr.Update(tea.WindowSizeMsg{Width: 120, Height: 40}); cmd != nil {
		t.Error("deactivated tracker scheduled a re-measure")
	}
	if tr.TerminalWidth != 100 {
		t.Errorf("TerminalWidth = %d, want unchanged 100", tr.TerminalWidth)
	}
}

func TestViewportTracker_InnerDimensions(t *testing.T) {
	tr := NewViewportTracker()
	if got := tr.InnerWidth(40); got != 40-BorderSize {
		t.Errorf("InnerWidth(40) = %d", got)
	}
	if got := tr.InnerHeight(20); got != 20-BorderSize {
		t.Errorf("InnerHeight(20) = %d", got)
	}
}
