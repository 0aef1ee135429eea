package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Choice is a single-select option list.
type Choice struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewChoice creates a choice list. value preselects a matching option.
func NewChoice(options []string, value string) Choice {
	chosen := -1
	for i, opt := range options {
		if opt == value {
			chosen = i
			break
		}
	}
	cursor := 0
	if chosen >= 0 {
		cursor = chosen
	}
	return Choice{
		Options: options,
		Cursor:  cursor,
		Chosen:  chosen,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space":
		c.Chosen = c.Cursor
	}

	return c, nil
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + marker + " " + opt
		if i == c.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if i == c.Chosen {
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the chosen option, or "" if none is chosen.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}
