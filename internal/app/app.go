package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/foundry/internal/coach"
	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/screens/builder"
	"github.com/abhisek/foundry/internal/screens/home"
	"github.com/abhisek/foundry/internal/screens/welcome"
	"github.com/abhisek/foundry/internal/ui/layout"
	"github.com/abhisek/foundry/internal/worksheet"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *curriculum.Tracker
	cfg     *config.Config
	width   int
	height  int
}

// newAppModel wires the screens together from the shared services.
// When ws is non-nil the app opens straight into its builder.
func newAppModel(store draft.Store, cfgDir string, cfg *config.Config, tracker *curriculum.Tracker, coachSvc *coach.Service, ws *worksheet.Worksheet) AppModel {
	sink := export.FileSink{Dir: cfg.Export.Dir}

	dayFn := func() int {
		return currentDay(cfg)
	}

	homeScreen := home.New(store, cfg.Drafts.AutosaveDelay, sink, coachSvc, tracker, dayFn)
	r := router.New(homeScreen)

	switch {
	case ws != nil:
		r.Push(builder.New(ws, store, cfg.Drafts.AutosaveDelay, sink, coachSvc))
	case cfg.Program.StartDate == "":
		// First run: greet and offer to start the 30-day clock.
		r.Push(welcome.New(cfgDir, cfg))
	}

	return AppModel{
		router:  r,
		tracker: tracker,
		cfg:     cfg,
	}
}

// currentDay computes the 1-based program day, or 0 when unstarted.
func currentDay(cfg *config.Config) int {
	start, err := cfg.StartDate()
	if err != nil || start.IsZero() {
		return 0
	}
	return curriculum.CurrentDay(start, time.Now())
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	day := currentDay(m.cfg)
	progress := 0
	if m.tracker != nil {
		progress = m.tracker.OverallProgress()
	}
	header := layout.RenderHeader(title, day, progress, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program with the shared services wired in.
func Run(store draft.Store, cfgDir string, cfg *config.Config) error {
	return run(store, cfgDir, cfg, nil)
}

// RunWorksheet starts the TUI directly inside the builder for ws.
func RunWorksheet(store draft.Store, cfgDir string, cfg *config.Config, ws *worksheet.Worksheet) error {
	return run(store, cfgDir, cfg, ws)
}

func run(store draft.Store, cfgDir string, cfg *config.Config, ws *worksheet.Worksheet) error {
	tracker, err := curriculum.NewTracker(context.Background(), store)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}

	coachSvc := newCoachService(context.Background(), cfg)

	p := tea.NewProgram(newAppModel(store, cfgDir, cfg, tracker, coachSvc, ws))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// newCoachService builds the review service from env and config file
// settings. Returns nil when no API key is available; the UI degrades
// to showing a setup hint.
func newCoachService(ctx context.Context, cfg *config.Config) *coach.Service {
	ccfg := coach.ConfigFromEnv()
	if ccfg.Validate() != nil {
		discovered, ok := coach.DiscoverConfig()
		if !ok {
			return nil
		}
		ccfg = discovered
	}

	if cfg.Coach.Provider != "" {
		ccfg.Provider = cfg.Coach.Provider
	}
	if cfg.Coach.Model != "" {
		switch ccfg.Provider {
		case "anthropic":
			ccfg.Anthropic.Model = cfg.Coach.Model
		case "openai":
			ccfg.OpenAI.Model = cfg.Coach.Model
		case "gemini":
			ccfg.Gemini.Model = cfg.Coach.Model
		}
	}
	if ccfg.Validate() != nil {
		return nil
	}

	provider, err := coach.NewProvider(ctx, ccfg)
	if err != nil {
		return nil
	}
	return coach.NewService(provider)
}
