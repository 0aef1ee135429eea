package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Scale is a bounded numeric selector rendered as a row of stops.
type Scale struct {
	Min      int
	Max      int
	Labels   [2]string
	Value    int
	answered bool
}

// NewScale creates a scale selector. answered preselects value.
func NewScale(min, max int, labels [2]string, value int, answered bool) Scale {
	if !answered {
		value = min
	}
	if value < min {
		value = min
	}
	if value > max {
		value = max
	}
	return Scale{
		Min:      min,
		Max:      max,
		Labels:   labels,
		Value:    value,
		answered: answered,
	}
}

// Init returns nil.
func (s Scale) Init() tea.Cmd {
	return nil
}

// Update handles keyboard movement. Any movement or enter counts the
// scale as answered.
func (s Scale) Update(msg tea.Msg) (Scale, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.Value > s.Min {
			s.Value--
		}
		s.answered = true
	case "right", "l":
		if s.Value < s.Max {
			s.Value++
		}
		s.answered = true
	case "enter", "space":
		s.answered = true
	}

	return s, nil
}

// View renders the scale stops with endpoint labels.
func (s Scale) View() string {
	var stops []string
	for v := s.Min; v <= s.Max; v++ {
		stop := fmt.Sprintf(" %d ", v)
		if v == s.Value && s.answered {
			stops = append(stops, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(stop))
		} else if v == s.Value {
			stops = append(stops, lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render(stop))
		} else {
			stops = append(stops, lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(stop))
		}
	}

	row := "  " + strings.Join(stops, " ")

	if s.Labels[0] != "" || s.Labels[1] != "" {
		labelStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
		row += "\n  " + labelStyle.Render(s.Labels[0]) +
			strings.Repeat(" ", gapWidth(row, s.Labels[0], s.Labels[1])) +
			labelStyle.Render(s.Labels[1])
	}

	return row
}

func gapWidth(row, left, right string) int {
	w := lipgloss.Width(strings.SplitN(row, "\n", 2)[0]) - len([]rune(left)) - len([]rune(right)) - 2
	if w < 1 {
		return 1
	}
	return w
}

// Answered reports whether the user has touched the scale.
func (s Scale) Answered() bool {
	return s.answered
}
