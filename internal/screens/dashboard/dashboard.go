package dashboard

import (
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
	"github.com/abhisek/foundry/internal/ui/layout"
	"github.com/abhisek/foundry/internal/ui/theme"
)

type rowKind int

const (
	rowPhaseHeader rowKind = iota
	rowDay
)

type row struct {
	kind  rowKind
	phase curriculum.Phase
	day   *curriculum.Day
}

// DashboardScreen lists the 30-day program grouped by phase.
type DashboardScreen struct {
	rows         []row
	cursor       int
	scrollOffset int

	tracker    *curriculum.Tracker
	currentDay int

	store         draft.Store
	autosaveDelay time.Duration
	sink          export.Sink
	coach         *coach.Service
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the program dashboard. currentDay highlights where the
// founder is in the calendar; zero means the program has not started.
func New(tracker *curriculum.Tracker, currentDay int, store draft.Store, autosaveDelay time.Duration, sink export.Sink, coachSvc *coach.Service) *DashboardScreen {
	program := curriculum.Program()

	var rows []row
	var lastPhase curriculum.Phase
	for i := range program {
		d := &program[i]
		if d.Phase != lastPhase {
			rows = append(rows, row{kind: rowPhaseHeader, phase: d.Phase})
			lastPhase = d.Phase
		}
		rows = append(rows, row{kind: rowDay, phase: d.Phase, day: d})
	}

	s := &DashboardScreen{
		rows:          rows,
		tracker:       tracker,
		currentDay:    currentDay,
		store:         store,
		autosaveDelay: autosaveDelay,
		sink:          sink,
		coach:         coachSvc,
	}

	// Start the cursor on today.
	target := currentDay
	if target < 1 {
		target = 1
	}
	for i, r := range s.rows {
		if r.kind == rowDay && r.day.Number == target {
			s.cursor = i
			break
		}
	}
	if s.rows[s.cursor].kind != rowDay {
		s.moveCursor(1)
	}

	return s
}

func (s *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (s *DashboardScreen) Title() string {
	return "30-Day Plan"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Phase"},
		{Key: "Enter", Description: "Open day"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextPhase()
		case "shift+tab":
			s.prevPhase()
		case "enter":
			return s, s.openDay()
		case "esc", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowPhaseHeader:
			lines = append(lines, s.renderPhaseHeader(r.phase, width))
		case rowDay:
			lines = append(lines, s.renderDayRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

// moveCursor moves the cursor by delta, skipping phase headers.
func (s *DashboardScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowDay {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextPhase jumps the cursor to the first day of the next phase.
func (s *DashboardScreen) nextPhase() {
	current := s.rows[s.cursor].phase
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowDay && s.rows[i].phase != current {
			s.cursor = i
			return
		}
	}
}

// prevPhase jumps the cursor to the first day of the previous phase.
func (s *DashboardScreen) prevPhase() {
	current := s.rows[s.cursor].phase

	prevStart := -1
	var prev curriculum.Phase
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowDay && s.rows[i].phase != current {
			prev = s.rows[i].phase
			prevStart = i
			break
		}
	}
	if prevStart < 0 {
		return
	}

	for i := prevStart; i >= 0; i-- {
		if s.rows[i].kind != rowDay || s.rows[i].phase != prev {
			s.cursor = i + 1
			return
		}
	}
	s.cursor = 0
	if s.rows[0].kind != rowDay {
		s.moveCursor(1)
	}
}

// adjustScroll keeps the cursor visible, with its phase header when
// possible.
func (s *DashboardScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowPhaseHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

// openDay pushes the day detail for the row under the cursor.
func (s *DashboardScreen) openDay() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowDay || r.day == nil {
		return nil
	}
	detail := newDayDetail(r.day, s.tracker, s.store, s.autosaveDelay, s.sink, s.coach)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail}
	}
}

func (s *DashboardScreen) renderPhaseHeader(phase curriculum.Phase, width int) string {
	name := strings.ToUpper(string(phase))
	pct := s.tracker.PhaseProgress(phase)
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(fmt.Sprintf("%s  ·  %d%%", name, pct))
}

func (s *DashboardScreen) renderDayRow(r row, selected bool, width int) string {
	d := r.day

	done := 0
	for _, t := range d.Tasks {
		if s.tracker.Done(t.ID) {
			done++
		}
	}

	marker := "  "
	switch {
	case selected:
		marker = "▸ "
	case d.Number == s.currentDay:
		marker = "● "
	}

	titleWidth := width - 30
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := d.Title
	if len(title) > titleWidth {
		title = title[:titleWidth-1] + "…"
	}

	var nameStyle, countStyle lipgloss.Style
	switch {
	case selected:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		countStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case done == len(d.Tasks) && len(d.Tasks) > 0:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Success)
		countStyle = lipgloss.NewStyle().Foreground(theme.Success)
	case d.Number == s.currentDay:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Accent)
		countStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		nameStyle = lipgloss.NewStyle().Foreground(theme.Text)
		countStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	ws := ""
	if d.WorksheetID != "" {
		ws = lipgloss.NewStyle().Foreground(theme.Secondary).Render(" ◆")
	}

	return fmt.Sprintf("  %sDay %2d  %s  %s%s",
		marker,
		d.Number,
		nameStyle.Render(fmt.Sprintf("%-*s", titleWidth, title)),
		countStyle.Render(fmt.Sprintf("%d/%d tasks", done, len(d.Tasks))),
		ws,
	)
}
