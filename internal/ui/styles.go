package ui

import "charm.land/lipgloss/v2"

// Color palette - derived from the active theme by regenerateStyles
var (
	ColorPrimary     = lipgloss.Color("#7C3AED")
	ColorSecondary   = lipgloss.Color("#06B6D4")
	ColorBorder      = lipgloss.Color("#374151")
	ColorBorderFocus = lipgloss.Color("#7C3AED")
	ColorText        = lipgloss.Color("#F9FAFB")
	ColorTextMuted   = lipgloss.Color("#9CA3AF")
	ColorUser        = lipgloss.Color("#A78BFA")
	ColorAssistant   = lipgloss.Color("#22D3EE")
	ColorWarning     = lipgloss.Color("#F59E0B")
	ColorError       = lipgloss.Color("#EF4444")
	ColorSuccess     = lipgloss.Color("#10B981")
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorPrimary).
			Padding(0, 1)
)

// Footer styles
var (
	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItemStyle = lipgloss.NewStyle().
				Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(BuiltinThemes[DefaultTheme].GetBgSelected())).
				Foreground(lipgloss.Color(BuiltinThemes[DefaultTheme].Text)).
				Bold(true).
				Padding(0, 1)

	SidebarLocalBadgeStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Italic(true)
)

// Chat styles
var (
	ChatUserStyle = lipgloss.NewStyle().
			Foreground(ColorUser).
			Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
				Foreground(ColorAssistant).
				Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
				Foreground(ColorText)

	ChatInputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorBorderFocus).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			MarginTop(1)
)

// Status styles
var (
	StatusLoadingStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Bold(true)

	StatusOnlineStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)

	StatusOfflineStyle = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)
)

// regenerateStyles rebuilds every derived style from the active theme.
// Called whenever the theme changes.
func regenerateStyles() {
	t := CurrentTheme()

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorUser = lipgloss.Color(t.User)
	ColorAssistant = lipgloss.Color(t.Assistant)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	HeaderStyle = HeaderStyle.Foreground(ColorText).Background(ColorPrimary)
	FooterStyle = FooterStyle.Foreground(ColorTextMuted)
	FooterKeyStyle = FooterKeyStyle.Foreground(ColorSecondary)
	FooterDescStyle = FooterDescStyle.Foreground(ColorTextMuted)

	PanelStyle = PanelStyle.BorderForeground(ColorBorder)
	PanelFocusedStyle = PanelFocusedStyle.BorderForeground(ColorBorderFocus)
	PanelTitleStyle = PanelTitleStyle.Foreground(ColorPrimary)

	SidebarSelectedStyle = SidebarSelectedStyle.
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(lipgloss.Color(t.Text))
	SidebarLocalBadgeStyle = SidebarLocalBadgeStyle.Foreground(ColorWarning)

	ChatUserStyle = ChatUserStyle.Foreground(ColorUser)
	ChatAssistantStyle = ChatAssistantStyle.Foreground(ColorAssistant)
	ChatMessageStyle = ChatMessageStyle.Foreground(ColorText)
	ChatInputStyle = ChatInputStyle.BorderForeground(ColorBorder)
	ChatInputFocusedStyle = ChatInputFocusedStyle.BorderForeground(ColorBorderFocus)

	ModalStyle = ModalStyle.BorderForeground(ColorPrimary)
	ModalTitleStyle = ModalTitleStyle.Foreground(ColorPrimary)
	ModalHelpStyle = ModalHelpStyle.Foreground(ColorTextMuted)

	StatusLoadingStyle = StatusLoadingStyle.Foreground(ColorSecondary)
	StatusErrorStyle = StatusErrorStyle.Foreground(ColorError)
	StatusOnlineStyle = StatusOnlineStyle.Foreground(ColorSuccess)
	StatusOfflineStyle = StatusOfflineStyle.Foreground(ColorWarning)
}
