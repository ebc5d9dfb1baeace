package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/banterhq/banter/internal/mock"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// LoginState - State for the Sign In modal
// =============================================================================

type LoginState struct {
	Input textinput.Model
}

func (*LoginState) modalState() {}

func (s *LoginState) Title() string { return "Sign In" }

func (s *LoginState) Help() string {
	return "Enter your API token, Enter to sign in, Esc to cancel"
}

func (s *LoginState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.Input.View(), help)
}

func (s *LoginState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}

// GetToken returns the entered API token
func (s *LoginState) GetToken() string {
	return s.Input.Value()
}

// NewLoginState creates a new LoginState with a focused input
func NewLoginState() *LoginState {
	ti := textinput.New()
	ti.Placeholder = "API token"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.EchoMode = textinput.EchoPassword
	ti.Focus()
	return &LoginState{Input: ti}
}

// =============================================================================
// MoodPickerState - State for the reply mood picker
// =============================================================================

type MoodPickerState struct {
	Moods         []string
	SelectedIndex int
}

func (*MoodPickerState) modalState() {}

func (s *MoodPickerState) Title() string { return "Reply Mood" }

func (s *MoodPickerState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *MoodPickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var optionList string
	for i, mood := range s.Moods {
		style := SidebarItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+mood) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, optionList, help)
}

func (s *MoodPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Moods)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// SelectedMood returns the highlighted mood
func (s *MoodPickerState) SelectedMood() string {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Moods) {
		return mock.DefaultMood
	}
	return s.Moods[s.SelectedIndex]
}

// NewMoodPickerState creates a mood picker with the current mood highlighted
func NewMoodPickerState(current string) *MoodPickerState {
	s := &MoodPickerState{Moods: mock.Moods}
	for i, mood := range s.Moods {
		if mood == current {
			s.SelectedIndex = i
			break
		}
	}
	return s
}

// =============================================================================
// ConfirmDeleteState - State for the Delete Conversation modal
// =============================================================================

type ConfirmDeleteState struct {
	ConversationID    string
	ConversationTitle string
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Conversation?" }

func (s *ConfirmDeleteState) Help() string {
	return "Enter to delete, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(s.ConversationTitle)

	message := lipgloss.NewStyle().
		Foreground(ColorText).
		Render("This will remove the conversation and its messages.")

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, label, message, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewConfirmDeleteState creates a new ConfirmDeleteState
func NewConfirmDeleteState(id, title string) *ConfirmDeleteState {
	return &ConfirmDeleteState{ConversationID: id, ConversationTitle: title}
}
