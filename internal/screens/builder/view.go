package builder

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/ui/components"
	"github.com/abhisek/foundry/internal/ui/theme"
)

func (b *BuilderScreen) View(width, height int) string {
	b.width = width
	sec := b.session.Section()
	q := b.question()
	if sec == nil || q == nil {
		return ""
	}

	var out strings.Builder

	// Section line: position left, progress right.
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Section %d/%d: %s",
			b.session.CurrentSection()+1, b.session.SectionCount(), sec.Title))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("section %d%%  overall %d%%",
			b.session.SectionProgress(b.session.CurrentSection()),
			b.session.Progress()))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	out.WriteString(line)
	out.WriteString("\n")

	if sec.Description != "" {
		out.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + sec.Description))
		out.WriteString("\n")
	}

	out.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat("─", max(width-4, 1))))
	out.WriteString("\n\n")

	// Question block.
	req := ""
	if q.Required {
		req = lipgloss.NewStyle().Foreground(theme.Error).Render(" *")
	}
	out.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("  Q%d/%d  %s", b.qIndex+1, len(sec.Questions), q.Label)))
	out.WriteString(req)
	out.WriteString("\n")

	if q.HelpText != "" {
		out.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + q.HelpText))
		out.WriteString("\n")
	}
	if q.Hint != "" {
		out.WriteString(theme.Hint.Render("  Hint: " + q.Hint))
		out.WriteString("\n")
	}
	out.WriteString("\n")

	out.WriteString(indent(b.editor.view(), "  "))
	out.WriteString("\n")

	// Text widgets carry their own error line; the rest show it here.
	if b.editor.control != engine.ControlInput &&
		b.editor.control != engine.ControlTextArea &&
		b.editor.control != engine.ControlFilePicker {
		if msg, ok := b.session.FieldError(q.ID); ok {
			out.WriteString("\n")
			out.WriteString(lipgloss.NewStyle().
				Foreground(theme.Error).
				Render("  ✗ " + msg))
			out.WriteString("\n")
		}
	}

	if b.notice != "" {
		out.WriteString("\n")
		out.WriteString(lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("  " + b.notice))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(components.NewProgressBar("  Progress", float64(b.session.Progress())/100, true, min(width-4, 64)).View())
	out.WriteString("\n\n")
	out.WriteString(b.saveStatus())

	return out.String()
}

// saveStatus renders the autosave indicator line.
func (b *BuilderScreen) saveStatus() string {
	if msg := b.saveErr.get(b.session.LastSavedAt()); msg != "" {
		return lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("  ⚠ " + msg)
	}
	if at := b.session.LastSavedAt(); !at.IsZero() {
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  Draft saved " + at.Format("15:04:05"))
	}
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("  Draft autosaves as you type")
}

// indent prefixes each line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
