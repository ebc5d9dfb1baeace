// Package ui provides theme management for the application.
// Themes define the color palette used throughout the UI, allowing users
// to customize the visual appearance of Banter.
package ui

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (used for focus, highlights, headers)
	Primary string
	// Secondary is the secondary accent color (used for assistant messages, info)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected item background (defaults to Primary if empty)

	// Text colors
	Text      string // Primary text
	TextMuted string // Secondary/muted text

	// Semantic colors
	User      string // User message labels
	Assistant string // Assistant message labels
	Warning   string // Warnings, offline badge
	Error     string // Error messages
	Success   string // Signed-in badge

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:      "Dark Purple",
		Primary:   "#7C3AED",
		Secondary: "#06B6D4",
		Bg:        "#1F2937",
		Text:      "#F9FAFB",
		TextMuted: "#9CA3AF",
		User:      "#A78BFA",
		Assistant: "#22D3EE",
		Warning:   "#F59E0B",
		Error:     "#EF4444",
		Success:   "#10B981",
		Border:    "#374151",
	},
	ThemeNord: {
		Name:      "Nord",
		Primary:   "#88C0D0",
		Secondary: "#81A1C1",
		Bg:        "#2E3440",
		Text:      "#ECEFF4",
		TextMuted: "#7B88A1",
		User:      "#B48EAD",
		Assistant: "#8FBCBB",
		Warning:   "#EBCB8B",
		Error:     "#BF616A",
		Success:   "#A3BE8C",
		Border:    "#4C566A",
	},
	ThemeDracula: {
		Name:      "Dracula",
		Primary:   "#BD93F9",
		Secondary: "#8BE9FD",
		Bg:        "#282A36",
		Text:      "#F8F8F2",
		TextMuted: "#6272A4",
		User:      "#FF79C6",
		Assistant: "#8BE9FD",
		Warning:   "#F1FA8C",
		Error:     "#FF5555",
		Success:   "#50FA7B",
		Border:    "#44475A",
	},
	ThemeLight: {
		Name:       "Light",
		Primary:    "#6D28D9",
		Secondary:  "#0E7490",
		Bg:         "#FFFFFF",
		BgSelected: "#DDD6FE",
		Text:       "#111827",
		TextMuted:  "#6B7280",
		User:       "#7C3AED",
		Assistant:  "#0E7490",
		Warning:    "#B45309",
		Error:      "#B91C1C",
		Success:    "#047857",
		Border:     "#D1D5DB",
	},
}

var currentThemeName = DefaultTheme

// ThemeNames returns all available theme names in a stable order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeDarkPurple, ThemeNord, ThemeDracula, ThemeLight}
}

// GetTheme returns the theme with the given name, or the default
func GetTheme(name ThemeName) Theme {
	if t, ok := BuiltinThemes[name]; ok {
		return t
	}
	return BuiltinThemes[DefaultTheme]
}

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return GetTheme(currentThemeName)
}

// CurrentThemeName returns the active theme's name
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// SetTheme switches the active theme and regenerates all derived styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[name]; !ok {
		name = DefaultTheme
	}
	currentThemeName = name
	regenerateStyles()
}

// SetThemeByName switches themes using a plain string, falling back to the
// default for unknown names
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}
