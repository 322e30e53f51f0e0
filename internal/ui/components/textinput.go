package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/playdeck/internal/ui/theme"
)

// TextSubmittedMsg is emitted when Enter is pressed with non-blank text.
type TextSubmittedMsg struct {
	Text string
}

// TextInput wraps bubbles/textinput with playdeck styling.
type TextInput struct {
	Model     textinput.Model
	submitted bool
}

// NewTextInput creates a new focused text input.
func NewTextInput(placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()
	return TextInput{Model: ti}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards keys to the input. Enter emits TextSubmittedMsg once.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.submitted {
		return t, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		text := strings.TrimSpace(t.Model.Value())
		if text == "" {
			return t, nil
		}
		t.submitted = true
		t.Model.Blur()
		return t, func() tea.Msg { return TextSubmittedMsg{Text: text} }
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submitted reports whether the text was sent.
func (t TextInput) Submitted() bool {
	return t.submitted
}
