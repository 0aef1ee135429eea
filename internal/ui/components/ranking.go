package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Ranking lets the user order a list of options from first to last.
type Ranking struct {
	Items   []string
	Cursor  int
	touched bool
}

// NewRanking creates a ranking list. A saved order takes precedence over
// the option order; options missing from it are appended at the end.
func NewRanking(options, saved []string) Ranking {
	items := make([]string, 0, len(options))
	for _, v := range saved {
		for _, opt := range options {
			if opt == v {
				items = append(items, v)
				break
			}
		}
	}
	for _, opt := range options {
		found := false
		for _, v := range items {
			if v == opt {
				found = true
				break
			}
		}
		if !found {
			items = append(items, opt)
		}
	}
	return Ranking{
		Items:   items,
		touched: len(saved) > 0,
	}
}

// Init returns nil.
func (r Ranking) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and item reordering. Shift-up and
// shift-down move the item under the cursor.
func (r Ranking) Update(msg tea.Msg) (Ranking, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.Cursor > 0 {
			r.Cursor--
		}
	case "down", "j":
		if r.Cursor < len(r.Items)-1 {
			r.Cursor++
		}
	case "shift+up", "K":
		if r.Cursor > 0 {
			r.Items[r.Cursor-1], r.Items[r.Cursor] = r.Items[r.Cursor], r.Items[r.Cursor-1]
			r.Cursor--
			r.touched = true
		}
	case "shift+down", "J":
		if r.Cursor < len(r.Items)-1 {
			r.Items[r.Cursor+1], r.Items[r.Cursor] = r.Items[r.Cursor], r.Items[r.Cursor+1]
			r.Cursor++
			r.touched = true
		}
	case "enter", "space":
		r.touched = true
	}

	return r, nil
}

// View renders the ranked list with position numbers.
func (r Ranking) View() string {
	var s string
	for i, item := range r.Items {
		prefix := "  "
		if i == r.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%d. %s", prefix, i+1, item)
		if i == r.Cursor {
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		} else {
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}

// Value returns the current order, or nil if the user has not ranked yet.
func (r Ranking) Value() []string {
	if !r.touched {
		return nil
	}
	out := make([]string, len(r.Items))
	copy(out, r.Items)
	return out
}
