package components

import (
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// TextArea wraps bubbles/textarea for long-form answers.
type TextArea struct {
	Model    textarea.Model
	errorMsg string
}

// NewTextArea creates a styled multi-line text input.
func NewTextArea(placeholder, value string, width, height int) TextArea {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.SetValue(value)
	if width > 0 {
		ta.SetWidth(width)
	}
	if height > 0 {
		ta.SetHeight(height)
	}
	ta.Focus()

	return TextArea{Model: ta}
}

// Init returns the initial command.
func (t TextArea) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextArea) Update(msg tea.Msg) (TextArea, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the textarea with any validation message beneath it.
func (t TextArea) View() string {
	view := t.Model.View()
	if t.errorMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+t.errorMsg)
	}
	return view
}

// Value returns the current content.
func (t TextArea) Value() string {
	return t.Model.Value()
}

// SetError sets the validation message shown under the textarea.
func (t *TextArea) SetError(msg string) {
	t.errorMsg = msg
}
