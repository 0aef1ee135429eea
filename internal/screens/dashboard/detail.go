package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/coach"
	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/screens/builder"
	"github.com/abhisek/foundry/internal/ui/layout"
	"github.com/abhisek/foundry/internal/ui/theme"
	"github.com/abhisek/foundry/internal/worksheet"
)

// DayDetailScreen shows one program day: tasks to tick off,
// objectives, reflection prompts and deliverables.
type DayDetailScreen struct {
	day     *curriculum.Day
	tracker *curriculum.Tracker
	cursor  int
	warn    string

	store         draft.Store
	autosaveDelay time.Duration
	sink          export.Sink
	coach         *coach.Service
}

var _ screen.Screen = (*DayDetailScreen)(nil)
var _ screen.KeyHintProvider = (*DayDetailScreen)(nil)

func newDayDetail(day *curriculum.Day, tracker *curriculum.Tracker, store draft.Store, autosaveDelay time.Duration, sink export.Sink, coachSvc *coach.Service) *DayDetailScreen {
	return &DayDetailScreen{
		day:           day,
		tracker:       tracker,
		store:         store,
		autosaveDelay: autosaveDelay,
		sink:          sink,
		coach:         coachSvc,
	}
}

func (d *DayDetailScreen) Init() tea.Cmd { return nil }

func (d *DayDetailScreen) Title() string {
	return fmt.Sprintf("Day %d", d.day.Number)
}

func (d *DayDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Task"},
		{Key: "Space", Description: "Toggle done"},
	}
	if d.day.WorksheetID != "" {
		hints = append(hints, layout.KeyHint{Key: "W", Description: "Workshop"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (d *DayDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.day.Tasks)-1 {
			d.cursor++
		}
	case "enter", "space":
		d.toggleTask()
	case "w":
		return d, d.openWorkshop()
	case "esc", "q":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return d, nil
}

// toggleTask flips the task under the cursor and persists it.
func (d *DayDetailScreen) toggleTask() {
	if d.cursor < 0 || d.cursor >= len(d.day.Tasks) {
		return
	}
	t := d.day.Tasks[d.cursor]
	err := d.tracker.SetDone(context.Background(), t.ID, !d.tracker.Done(t.ID))
	if err != nil {
		d.warn = "could not save progress: " + err.Error()
	} else {
		d.warn = ""
	}
}

// openWorkshop pushes the builder for the day's linked worksheet.
func (d *DayDetailScreen) openWorkshop() tea.Cmd {
	if d.day.WorksheetID == "" {
		return nil
	}
	ws, err := worksheet.Get(d.day.WorksheetID)
	if err != nil {
		d.warn = err.Error()
		return nil
	}
	b := builder.New(ws, d.store, d.autosaveDelay, d.sink, d.coach)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: b}
	}
}

func (d *DayDetailScreen) View(width, height int) string {
	day := d.day
	contentWidth := width - 8
	if contentWidth > 72 {
		contentWidth = 72
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	headingStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  Day %d: %s", day.Number, day.Title)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s phase  ·  %d%% done", day.Phase, d.tracker.DayProgress(day))))
	b.WriteString("\n\n")

	if day.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(day.Description))
		b.WriteString("\n\n")
	}

	if len(day.Objectives) > 0 {
		b.WriteString(headingStyle.Render("  Objectives"))
		b.WriteString("\n")
		for _, o := range day.Objectives {
			b.WriteString(dimStyle.Render("  → " + o))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(headingStyle.Render("  Tasks"))
	b.WriteString("\n")
	for i, t := range day.Tasks {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if d.tracker.Done(t.ID) {
			box = "[x]"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "  "
		if i == d.cursor {
			prefix = "▸ "
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		meta := dimStyle.Render(fmt.Sprintf("  (%s, %s)", t.Type, t.EstimatedTime))
		pri := ""
		if t.Priority == curriculum.PriorityHigh {
			pri = lipgloss.NewStyle().Foreground(theme.Accent).Render(" !")
		}

		b.WriteString("  " + prefix + style.Render(box+" "+t.Title) + meta + pri)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if day.WorksheetID != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Render("  ◆ Workshop available, press W to open"))
		b.WriteString("\n\n")
	}

	if len(day.Reflection) > 0 {
		b.WriteString(headingStyle.Render("  Reflection"))
		b.WriteString("\n")
		for _, r := range day.Reflection {
			b.WriteString(dimStyle.Render("  · " + r))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(day.Deliverables) > 0 {
		b.WriteString(headingStyle.Render("  Deliverables"))
		b.WriteString("\n")
		for _, dl := range day.Deliverables {
			b.WriteString(dimStyle.Render("  · " + dl))
			b.WriteString("\n")
		}
	}

	if d.warn != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  ⚠ " + d.warn))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
