package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/coach"
	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/ui/layout"
	"github.com/abhisek/foundry/internal/ui/theme"
)

// reviewDoneMsg carries the coach's feedback back to the UI loop.
type reviewDoneMsg struct {
	feedback *coach.Feedback
	err      error
}

// SummaryScreen shows a completed worksheet with export and coach
// review actions.
type SummaryScreen struct {
	session *engine.Session
	sink    export.Sink
	coach   *coach.Service

	exportNote string
	reviewing  bool
	feedback   *coach.Feedback
	reviewErr  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen for a completed session.
func New(sess *engine.Session, sink export.Sink, coachSvc *coach.Service) *SummaryScreen {
	return &SummaryScreen{
		session: sess,
		sink:    sink,
		coach:   coachSvc,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Worksheet Complete"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "E", Description: "Export"},
	}
	if s.coach != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Coach review"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewDoneMsg:
		s.reviewing = false
		if msg.err != nil {
			s.reviewErr = msg.err.Error()
		} else {
			s.feedback = msg.feedback
			s.reviewErr = ""
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e":
			if err := s.session.Export(s.sink); err != nil {
				s.exportNote = "export failed: " + err.Error()
			} else {
				s.exportNote = "Exported " + s.session.ExportFilename()
			}
			return s, nil

		case "r":
			if s.coach == nil {
				s.reviewErr = "Set a coach API key to get feedback (see foundry --help)"
				return s, nil
			}
			if s.reviewing {
				return s, nil
			}
			s.reviewing = true
			s.reviewErr = ""
			return s, s.requestReview()

		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

// requestReview asks the coach for feedback asynchronously.
func (s *SummaryScreen) requestReview() tea.Cmd {
	svc := s.coach
	snap := s.session.Snapshot()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()
		fb, err := svc.Review(ctx, snap)
		return reviewDoneMsg{feedback: fb, err: err}
	}
}

func (s *SummaryScreen) View(width, height int) string {
	snap := s.session.Snapshot()

	var b strings.Builder

	center := func(style lipgloss.Style, text string) {
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(text))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Worksheet complete!")
	center(lipgloss.NewStyle().Foreground(theme.TextDim), snap.WorksheetTitle)
	b.WriteString("\n")

	answered := 0
	total := 0
	for _, sec := range snap.Sections {
		for _, q := range sec.Questions {
			total++
			if str, ok := q.Answer.(string); !ok || str != "" {
				answered++
			}
		}
	}
	center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Answered %d of %d questions across %d sections",
			answered, total, len(snap.Sections)))
	center(lipgloss.NewStyle().Foreground(theme.TextDim),
		"Completed "+snap.CompletedAt.Format("Jan 2, 2006 15:04"))
	b.WriteString("\n")

	if s.exportNote != "" {
		center(lipgloss.NewStyle().Foreground(theme.Success), s.exportNote)
		b.WriteString("\n")
	}

	switch {
	case s.reviewing:
		center(lipgloss.NewStyle().Foreground(theme.TextDim), "Asking your coach for feedback...")
	case s.reviewErr != "":
		center(lipgloss.NewStyle().Foreground(theme.Error), s.reviewErr)
	case s.feedback != nil:
		b.WriteString(s.renderFeedback(width))
	default:
		center(lipgloss.NewStyle().Foreground(theme.TextDim),
			"Press E to export your answers"+reviewHint(s.coach))
	}

	return b.String()
}

func reviewHint(svc *coach.Service) string {
	if svc == nil {
		return ""
	}
	return ", R for a coach review"
}

// renderFeedback lays out the coach's structured review.
func (s *SummaryScreen) renderFeedback(width int) string {
	fb := s.feedback
	bodyWidth := min(width-8, 72)

	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", bodyWidth))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coach review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(fb.Summary)))
	b.WriteString("\n\n")

	b.WriteString(s.renderList(width, bodyWidth, "Strengths", fb.Strengths, theme.Success))
	b.WriteString(s.renderList(width, bodyWidth, "Gaps", fb.Gaps, theme.Error))
	b.WriteString(s.renderList(width, bodyWidth, "Next steps", fb.NextSteps, theme.Accent))

	return b.String()
}

func (s *SummaryScreen) renderList(width, bodyWidth int, heading string, items []string, c color.Color) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(c).Bold(true).Width(bodyWidth).Render(heading)))
	b.WriteString("\n")
	itemStyle := lipgloss.NewStyle().Width(bodyWidth).Foreground(theme.Text)
	for _, it := range items {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			itemStyle.Render("• "+it)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
