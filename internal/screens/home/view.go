package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/ui/theme"
)

// Block-letter title.
const titleFull = ` ███████╗ ██████╗ ██╗   ██╗███╗   ██╗██████╗ ██████╗ ██╗   ██╗
 ██╔════╝██╔═══██╗██║   ██║████╗  ██║██╔══██╗██╔══██╗╚██╗ ██╔╝
 █████╗  ██║   ██║██║   ██║██╔██╗ ██║██║  ██║██████╔╝ ╚████╔╝
 ██╔══╝  ██║   ██║██║   ██║██║╚██╗██║██║  ██║██╔══██╗  ╚██╔╝
 ██║     ╚██████╔╝╚██████╔╝██║ ╚████║██████╔╝██║  ██║   ██║
 ╚═╝      ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝╚═════╝ ╚═╝  ╚═╝   ╚═╝`

const titleCompact = "F · O · U · N · D · R · Y"

// contentWidth returns the uniform inner width used for all sections.
// All boxes render at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 66 {
		w = 66
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderStatsBar renders program stats in a bordered box matching
// content width.
func renderStatsBar(day, progress, worksheets, cw int, compact bool) string {
	dayStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	progressStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	sheetStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	dayText := dimStyle.Render("NOT STARTED")
	if day > 0 {
		if compact {
			dayText = dayStyle.Render(fmt.Sprintf("D%d/30", day))
		} else {
			dayText = dayStyle.Render(fmt.Sprintf("DAY %d/30", day))
		}
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			dayText,
			progressStyle.Render(fmt.Sprintf("%d%%", progress)),
			sheetStyle.Render(fmt.Sprintf("◆%d", worksheets)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			dayText,
			progressStyle.Render(fmt.Sprintf("▰ %d%% PROGRAM", progress)),
			sheetStyle.Render(fmt.Sprintf("◆ %d WORKSHEETS", worksheets)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 44

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines for small
// terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderCoachBanner renders a hint when no coach API key is configured.
func renderCoachBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set a coach API key to get worksheet reviews (see foundry --help)")
}

// renderFrame wraps content in a double-border frame, centered
// vertically and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
