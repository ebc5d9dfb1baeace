package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/banterhq/banter/internal/mock"
)

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()
	if m.IsVisible() {
		t.Error("new modal should be hidden")
	}

	m.Show(NewConfirmDeleteState("local-1", "hello..."))
	if !m.IsVisible() {
		t.Error("modal should be visible after Show")
	}

	m.SetError("boom")
	if m.GetError() != "boom" {
		t.Errorf("error = %q", m.GetError())
	}

	m.Hide()
	if m.IsVisible() || m.GetError() != "" {
		t.Error("Hide should clear state and error")
	}
}

func TestModal_ViewPlacesContent(t *testing.T) {
	m := NewModal()
	if m.View(100, 40) != "" {
		t.Error("hidden modal should render nothing")
	}

	m.Show(NewConfirmDeleteState("local-1", "my chat title"))
	view := m.View(100, 40)
	if !strings.Contains(view, "my chat title") {
		t.Error("modal view missing conversation title")
	}
	if !strings.Contains(view, "Delete Conversation?") {
		t.Error("modal view missing title")
	}
}

func TestMoodPickerState_Navigation(t *testing.T) {
	s := NewMoodPickerState(mock.DefaultMood)
	if s.SelectedMood() != mock.DefaultMood {
		t.Fatalf("initial mood = %q", s.SelectedMood())
	}

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	picker := next.(*MoodPickerState)
	if picker.SelectedMood() != mock.MoodFunny {
		t.Errorf("after down, mood = %q, want %q", picker.SelectedMood(), mock.MoodFunny)
	}

	for i := 0; i < 10; i++ {
		next, _ = picker.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		picker = next.(*MoodPickerState)
	}
	if picker.SelectedMood() != mock.Moods[len(mock.Moods)-1] {
		t.Errorf("mood = %q, want clamped at last", picker.SelectedMood())
	}
}

func TestMoodPickerState_StartsAtCurrentMood(t *testing.T) {
	s := NewMoodPickerState(mock.MoodRoasting)
	if s.SelectedMood() != mock.MoodRoasting {
		t.Errorf("initial mood = %q, want %q", s.SelectedMood(), mock.MoodRoasting)
	}
}

func TestLoginState_CapturesToken(t *testing.T) {
	s := NewLoginState()

	var state ModalState = s
	for _, r := range "tok-42" {
		state, _ = state.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}

	login := state.(*LoginState)
	if login.GetToken() != "tok-42" {
		t.Errorf("token = %q, want %q", login.GetToken(), "tok-42")
	}
}
