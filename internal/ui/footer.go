package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width           int
	hasConversation bool
	sidebarFocused  bool
	waiting         bool
	authenticated   bool
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasConversation, sidebarFocused, waiting, authenticated bool) {
	f.hasConversation = hasConversation
	f.sidebarFocused = sidebarFocused
	f.waiting = waiting
	f.authenticated = authenticated
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// View renders the footer
func (f *Footer) View() string {
	var bindings []KeyBinding

	switch {
	case f.sidebarFocused:
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "n", Desc: "new chat"},
			{Key: "d", Desc: "delete"},
			{Key: "m", Desc: "mood"},
		}
		if f.authenticated {
			bindings = append(bindings, KeyBinding{Key: "L", Desc: "sign out"})
		} else {
			bindings = append(bindings, KeyBinding{Key: "L", Desc: "sign in"})
		}
		bindings = append(bindings,
			KeyBinding{Key: "tab", Desc: "switch pane"},
			KeyBinding{Key: "q", Desc: "quit"},
		)
	case f.waiting:
		bindings = []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	default:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	}

	var parts []string
	for _, b := range bindings {
		// Tab is useless without a conversation to switch into
		if b.Key == "tab" && !f.hasConversation {
			continue
		}
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	return FooterStyle.Width(f.width).Render(strings.Join(parts, sep))
}
