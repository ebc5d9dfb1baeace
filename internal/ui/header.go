package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/banterhq/banter/internal/mock"
)

// Header represents the top header bar
type Header struct {
	width             int
	conversationTitle string
	mood              string
	authenticated     bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetConversationTitle sets the current conversation title to display
func (h *Header) SetConversationTitle(title string) {
	h.conversationTitle = title
}

// SetMood sets the active mood shown next to the connection status
func (h *Header) SetMood(mood string) {
	h.mood = mood
}

// SetAuthenticated toggles the signed-in indicator
func (h *Header) SetAuthenticated(authed bool) {
	h.authenticated = authed
}

// content builds the unstyled header line and the status word within it
func (h *Header) content() (string, string) {
	titleText := " banter"

	status := "offline"
	if h.authenticated {
		status = "online"
	}
	rightText := status + " "
	if h.mood != "" && h.mood != mock.DefaultMood {
		rightText = h.mood + " · " + rightText
	}
	if h.conversationTitle != "" {
		rightText = h.conversationTitle + " · " + rightText
	}

	paddingLen := h.width - len([]rune(titleText)) - len([]rune(rightText))
	if paddingLen < 0 {
		paddingLen = 0
	}

	return titleText + strings.Repeat(" ", paddingLen) + rightText, status
}

// View renders the header
func (h *Header) View() string {
	fullContent, status := h.content()
	return h.renderGradient(fullContent, status)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The status portion of the text is muted.
func (h *Header) renderGradient(content, status string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	statusStart := strings.LastIndex(content, status)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)
		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 7) // Bold for the "banter" title

		if statusStart >= 0 && i >= statusStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
