package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Matrix is a grid picker: one column selection per row.
type Matrix struct {
	Rows    []string
	Columns []string
	Cursor  int
	picks   map[string]string
}

// NewMatrix creates a matrix picker, restoring saved row selections.
func NewMatrix(rows, columns []string, saved map[string]string) Matrix {
	picks := make(map[string]string, len(saved))
	for _, row := range rows {
		if col, ok := saved[row]; ok {
			for _, c := range columns {
				if c == col {
					picks[row] = col
					break
				}
			}
		}
	}
	return Matrix{
		Rows:    rows,
		Columns: columns,
		picks:   picks,
	}
}

// Init returns nil.
func (m Matrix) Init() tea.Cmd {
	return nil
}

// Update moves between rows with up/down and cycles the selected column
// with left/right.
func (m Matrix) Update(msg tea.Msg) (Matrix, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Rows)-1 {
			m.Cursor++
		}
	case "left", "h":
		m.cycle(-1)
	case "right", "l":
		m.cycle(1)
	}

	return m, nil
}

func (m *Matrix) cycle(dir int) {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) || len(m.Columns) == 0 {
		return
	}
	row := m.Rows[m.Cursor]

	idx := -1
	if col, ok := m.picks[row]; ok {
		for i, c := range m.Columns {
			if c == col {
				idx = i
				break
			}
		}
	}

	idx += dir
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.Columns) {
		idx = len(m.Columns) - 1
	}
	m.picks[row] = m.Columns[idx]
}

// View renders one line per row with the column options inline.
func (m Matrix) View() string {
	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	cursorStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	pickStyle := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var s string
	for i, row := range m.Rows {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}

		label := row
		if i == m.Cursor {
			label = cursorStyle.Render(label)
		} else {
			label = rowStyle.Render(label)
		}

		cells := ""
		for _, col := range m.Columns {
			cell := " " + col + " "
			if m.picks[row] == col {
				cells += pickStyle.Render(cell) + " "
			} else {
				cells += dimStyle.Render(cell) + " "
			}
		}

		s += prefix + label + "\n    " + cells + "\n"
	}
	return s
}

// Value returns the row-to-column selections made so far.
func (m Matrix) Value() map[string]string {
	out := make(map[string]string, len(m.picks))
	for k, v := range m.picks {
		out[k] = v
	}
	return out
}
