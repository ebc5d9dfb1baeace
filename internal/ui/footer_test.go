package ui

import (
	"strings"
	"testing"
)

func TestFooter_SidebarBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(true, true, false, false)

	view := f.View()
	for _, want := range []string{"new chat", "delete", "mood", "sign in", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("sidebar footer missing %q", want)
		}
	}
}

func TestFooter_SignOutWhenAuthenticated(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(true, true, false, true)

	if !strings.Contains(f.View(), "sign out") {
		t.Error("authenticated footer should offer sign out")
	}
}

func TestFooter_ChatBindings(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(true, false, false, false)

	view := f.View()
	if !strings.Contains(view, "send") {
		t.Error("chat footer missing send binding")
	}
	if strings.Contains(view, "new chat") {
		t.Error("chat footer should not show sidebar bindings")
	}
}

func TestFooter_WaitingHidesSend(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(true, false, true, false)

	if strings.Contains(f.View(), "send") {
		t.Error("waiting footer should not offer send")
	}
}

func TestFooter_NoConversationHidesTab(t *testing.T) {
	f := NewFooter()
	f.SetWidth(120)
	f.SetContext(false, true, false, false)

	if strings.Contains(f.View(), "switch pane") {
		t.Error("footer offers pane switch with no conversation")
	}
}
