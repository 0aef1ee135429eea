package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/ui/theme"
)

// WelcomeScreen greets a first-time founder and starts the 30-day
// clock. Shown on top of the home screen when no start date is set.
type WelcomeScreen struct {
	cfgDir string
	cfg    *config.Config
	warn   string
	now    func() time.Time
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that writes the start date into cfg,
// which the caller shares with the rest of the app.
func New(cfgDir string, cfg *config.Config) *WelcomeScreen {
	return &WelcomeScreen{
		cfgDir: cfgDir,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return nil
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	switch kmsg.String() {
	case "enter":
		w.cfg.Program.StartDate = w.now().Format("2006-01-02")
		if err := config.Write(w.cfgDir, w.cfg); err != nil {
			w.warn = "could not save start date: " + err.Error()
			return w, nil
		}
		return w, func() tea.Msg { return router.PopScreenMsg{} }

	case "esc", "s":
		// Browse without starting the clock.
		return w, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return w, nil
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))
	sections = append(sections, "")

	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("From idea to launch in 30 days")
	sections = append(sections, tagline)
	sections = append(sections, "")

	body := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("A daily plan, guided worksheets, and a coach in your terminal.")
	sections = append(sections, body)
	sections = append(sections, "")

	start := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("Press Enter to start your program today")
	sections = append(sections, start)

	skip := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("or S to look around first")
	sections = append(sections, skip)

	if w.warn != "" {
		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Error).
			Render(w.warn))
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
