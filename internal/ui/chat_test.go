package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/banterhq/banter/internal/chat"
)

func testChatPanel() *ChatPanel {
	tr := NewViewportTracker()
	tr.Activate()
	c := NewChatPanel(tr)
	c.SetSize(tr.ChatWidth, tr.ContentHeight)
	return c
}

func TestChatPanel_EmptyStates(t *testing.T) {
	c := testChatPanel()

	if !strings.Contains(c.viewport.View(), "No conversation selected") {
		t.Error("missing no-conversation placeholder")
	}

	c.SetConversation(&chat.Conversation{ID: "local-1", Title: "New Conversation"})
	if !strings.Contains(c.viewport.View(), "Say something") {
		t.Error("missing empty-thread placeholder")
	}
}

func TestChatPanel_RendersMessages(t *testing.T) {
	c := testChatPanel()
	c.SetConversation(&chat.Conversation{
		ID:    "local-1",
		Title: "hello...",
		Messages: []chat.Message{
			{ID: "1", Role: chat.RoleUser, Content: "hello"},
			{ID: "2", Role: chat.RoleAssistant, Content: "hi there"},
		},
	})

	view := c.viewport.View()
	if !strings.Contains(view, "hello") || !strings.Contains(view, "hi there") {
		t.Error("viewport missing message content")
	}
	if !strings.Contains(view, "You") {
		t.Error("viewport missing user label")
	}
	if !strings.Contains(view, "Banter") {
		t.Error("viewport missing assistant label")
	}
}

func TestChatPanel_WaitingIndicator(t *testing.T) {
	c := testChatPanel()
	c.SetConversation(&chat.Conversation{ID: "local-1", Title: "t"})

	c.SetWaiting(true)
	if !c.IsWaiting() {
		t.Fatal("IsWaiting = false after SetWaiting(true)")
	}
	view := c.viewport.View()
	if !strings.Contains(view, "...") {
		t.Error("waiting indicator not rendered")
	}

	c.SetWaiting(false)
	if c.IsWaiting() {
		t.Error("IsWaiting = true after SetWaiting(false)")
	}
}

func TestChatPanel_InputRoundTrip(t *testing.T) {
	c := testChatPanel()
	c.SetFocused(true)

	c.input.SetValue("draft message")
	if c.InputValue() != "draft message" {
		t.Errorf("InputValue = %q", c.InputValue())
	}
	c.ClearInput()
	if c.InputValue() != "" {
		t.Errorf("InputValue = %q after clear", c.InputValue())
	}
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{1200 * time.Millisecond, "1.2s"},
		{59 * time.Second, "59.0s"},
		{83 * time.Second, "1:23"},
		{10 * time.Minute, "10:00"},
	}
	for _, tt := range tests {
		if got := formatElapsed(tt.d); got != tt.want {
			t.Errorf("formatElapsed(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestRenderBody_WrapsAndHighlights(t *testing.T) {
	long := strings.Repeat("word ", 30)
	wrapped := renderBody(long, 40)
	for _, line := range strings.Split(wrapped, "\n") {
		if len([]rune(line)) > 40 {
			t.Fatalf("line exceeds wrap width: %q", line)
		}
	}

	code := "```go\nfunc main() {}\n```"
	out := renderBody(code, 60)
	if !strings.Contains(out, "main") {
		t.Error("code block content lost during rendering")
	}
	if strings.Contains(out, "```") {
		t.Error("code fences should not appear in rendered output")
	}
}

func TestRenderBody_UnclosedFence(t *testing.T) {
	out := renderBody("```python\nprint('hi')", 60)
	if !strings.Contains(out, "print") {
		t.Error("unclosed code block content lost")
	}
}
