package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/banterhq/banter/internal/chat"
)

// StopwatchTickMsg is sent to update the waiting stopwatch display
type StopwatchTickMsg time.Time

// waitingVerbs cycle while an assistant reply is pending
var waitingVerbs = []string{
	"Thinking",
	"Pondering",
	"Mulling",
	"Composing",
	"Considering",
	"Brewing",
	"Percolating",
	"Noodling",
}

func randomWaitingVerb() string {
	return waitingVerbs[rand.Intn(len(waitingVerbs))]
}

// ChatPanel represents the right panel with the conversation view and input
type ChatPanel struct {
	tracker *ViewportTracker

	viewport viewport.Model
	input    textarea.Model

	width  int
	height int

	focused         bool
	hasConversation bool
	title           string
	messages        []chat.Message

	waiting       bool
	waitStartTime time.Time
	waitingVerb   string
}

// NewChatPanel creates the chat panel
func NewChatPanel(tracker *ViewportTracker) *ChatPanel {
	ti := textarea.New()
	ti.Placeholder = "Type your message..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &ChatPanel{
		tracker:  tracker,
		viewport: vp,
		input:    ti,
		messages: []chat.Message{},
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions (input area included)
func (c *ChatPanel) SetSize(width, height int) {
	c.width = width
	c.height = height

	panelHeight := height - InputTotalHeight
	innerWidth := c.tracker.InnerWidth(width)
	viewportHeight := c.tracker.InnerHeight(panelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(innerWidth - 2)

	c.updateContent()
}

// SetFocused sets the focus state and moves textarea focus with it
func (c *ChatPanel) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *ChatPanel) IsFocused() bool {
	return c.focused
}

// SetConversation replaces the displayed thread. A nil conversation shows
// the empty-state prompt.
func (c *ChatPanel) SetConversation(conv *chat.Conversation) {
	if conv == nil {
		c.hasConversation = false
		c.title = ""
		c.messages = nil
	} else {
		c.hasConversation = true
		c.title = conv.Title
		c.messages = conv.Messages
	}
	c.updateContent()
	c.viewport.GotoBottom()
}

// InputValue returns the current input text
func (c *ChatPanel) InputValue() string {
	return c.input.Value()
}

// ClearInput empties the input textarea
func (c *ChatPanel) ClearInput() {
	c.input.Reset()
}

// SetWaiting toggles the pending-reply indicator
func (c *ChatPanel) SetWaiting(waiting bool) {
	if waiting && !c.waiting {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomWaitingVerb()
	}
	c.waiting = waiting
	c.updateContent()
}

// IsWaiting returns whether a reply is pending
func (c *ChatPanel) IsWaiting() bool {
	return c.waiting
}

// StopwatchTick returns a command that refreshes the stopwatch display
func StopwatchTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// formatElapsed formats a duration as a stopwatch string (e.g., "1.2s", "1:23")
func formatElapsed(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Update handles input editing, scrolling, and stopwatch ticks
func (c *ChatPanel) Update(msg tea.Msg) (*ChatPanel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case StopwatchTickMsg:
		if c.waiting {
			c.updateContent()
			return c, StopwatchTick()
		}
		return c, nil
	case tea.KeyPressMsg:
		if !c.focused {
			return c, nil
		}
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)
		return c, tea.Batch(cmds...)
	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd
	}
	return c, nil
}

func (c *ChatPanel) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder

	if !c.hasConversation {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("No conversation selected. Press 'n' to start one."))
	} else if len(c.messages) == 0 && !c.waiting {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render("Say something..."))
	} else {
		for i, msg := range c.messages {
			if i > 0 {
				sb.WriteString("\n\n")
			}
			sb.WriteString(renderMessage(msg, wrapWidth))
		}
	}

	if c.waiting {
		elapsed := formatElapsed(time.Since(c.waitStartTime))
		sb.WriteString("\n\n")
		sb.WriteString(StatusLoadingStyle.Render(c.waitingVerb + "... " + elapsed))
	}

	atBottom := c.viewport.AtBottom()
	c.viewport.SetContent(sb.String())
	if atBottom {
		c.viewport.GotoBottom()
	}
}

// View renders the conversation viewport and the input area
func (c *ChatPanel) View() string {
	panelStyle := PanelStyle
	inputStyle := ChatInputStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
		inputStyle = ChatInputFocusedStyle
	}

	panelHeight := c.height - InputTotalHeight
	panel := panelStyle.Width(c.width).Height(panelHeight).Render(c.viewport.View())
	input := inputStyle.Width(c.width - BorderSize).Render(c.input.View())

	return lipgloss.JoinVertical(lipgloss.Left, panel, input)
}
