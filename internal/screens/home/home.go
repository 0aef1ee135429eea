package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/coach"
	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screens/builder"
	"github.com/abhisek/foundry/internal/screens/dashboard"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/ui/components"
	"github.com/abhisek/foundry/internal/worksheet"
)

// HomeScreen is the main menu: the day plan plus every worksheet in
// the catalog.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string

	tracker        *curriculum.Tracker
	dayFn          func() int
	worksheetCount int
	coachReady     bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. dayFn reports the current program day,
// zero before the start date is set; it is re-read on every render so
// starting the program reflects immediately.
func New(store draft.Store, autosaveDelay time.Duration, sink export.Sink, coachSvc *coach.Service, tracker *curriculum.Tracker, dayFn func() int) *HomeScreen {
	sheets := worksheet.All()

	var labels []string
	var items []components.MenuItem

	labels = append(labels, "30-DAY PLAN")
	items = append(items, components.MenuItem{
		Label: labels[0],
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: dashboard.New(tracker, dayFn(), store, autosaveDelay, sink, coachSvc),
				}
			}
		},
	})

	for _, ws := range sheets {
		ws := ws
		label := strings.ToUpper(ws.Title)
		labels = append(labels, label)
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: builder.New(ws, store, autosaveDelay, sink, coachSvc),
					}
				}
			},
		})
	}

	labels = append(labels, "EXIT")
	items = append(items, components.MenuItem{
		Label:  "EXIT",
		Action: func() tea.Cmd { return tea.Quit },
	})

	return &HomeScreen{
		menu:           components.NewMenu(items),
		menuLabels:     labels,
		tracker:        tracker,
		dayFn:          dayFn,
		worksheetCount: len(sheets),
		coachReady:     coachSvc != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	cw := contentWidth(width)

	var sections []string

	progress := 0
	if h.tracker != nil {
		progress = h.tracker.OverallProgress()
	}

	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(
		h.dayFn(), progress, h.worksheetCount, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if !h.coachReady {
		sections = append(sections, renderCoachBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
