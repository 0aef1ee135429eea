package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Checklist is a multi-select option list. Checked options are kept in
// the order the user checked them.
type Checklist struct {
	Options []string
	Cursor  int
	checked []string
}

// NewChecklist creates a checklist, pre-checking the given values.
func NewChecklist(options, checked []string) Checklist {
	kept := make([]string, 0, len(checked))
	for _, v := range checked {
		for _, opt := range options {
			if opt == v {
				kept = append(kept, v)
				break
			}
		}
	}
	return Checklist{
		Options: options,
		checked: kept,
	}
}

// Init returns nil.
func (c Checklist) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
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
		if c.Cursor >= 0 && c.Cursor < len(c.Options) {
			c.toggle(c.Options[c.Cursor])
		}
	}

	return c, nil
}

func (c *Checklist) toggle(opt string) {
	for i, v := range c.checked {
		if v == opt {
			c.checked = append(c.checked[:i], c.checked[i+1:]...)
			return
		}
	}
	c.checked = append(c.checked, opt)
}

func (c Checklist) isChecked(opt string) bool {
	for _, v := range c.checked {
		if v == opt {
			return true
		}
	}
	return false
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "[ ]"
		if c.isChecked(opt) {
			marker = "[x]"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := prefix + marker + " " + opt
		if i == c.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else if c.isChecked(opt) {
			s += lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the checked options in check order.
func (c Checklist) Value() []string {
	out := make([]string, len(c.checked))
	copy(out, c.checked)
	return out
}
