package home

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screens/dashboard"
	"github.com/abhisek/foundry/internal/worksheet"
)

func testHome(t *testing.T) *HomeScreen {
	t.Helper()
	store := draft.NewMemory()
	tracker, err := curriculum.NewTracker(context.Background(), store)
	if err != nil {
		t.Fatal(err)
	}
	return New(store, time.Hour, export.FileSink{Dir: "."}, nil, tracker, func() int { return 3 })
}

func TestHome_MenuCoversCatalog(t *testing.T) {
	h := testHome(t)

	want := len(worksheet.All()) + 2
	if got := len(h.menuLabels); got != want {
		t.Errorf("menu has %d entries, want %d", got, want)
	}
	if h.menuLabels[0] != "30-DAY PLAN" {
		t.Errorf("first entry = %q, want 30-DAY PLAN", h.menuLabels[0])
	}
	if h.menuLabels[len(h.menuLabels)-1] != "EXIT" {
		t.Errorf("last entry = %q, want EXIT", h.menuLabels[len(h.menuLabels)-1])
	}
}

func TestHome_EnterOpensDashboard(t *testing.T) {
	h := testHome(t)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	msg := cmd()
	pushMsg, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := pushMsg.Screen.(*dashboard.DashboardScreen); !ok {
		t.Fatalf("expected dashboard, got %T", pushMsg.Screen)
	}
}

func TestHome_WorksheetEntryOpensBuilder(t *testing.T) {
	if len(worksheet.All()) == 0 {
		t.Skip("empty catalog")
	}
	h := testHome(t)

	h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg for a worksheet entry")
	}
}

func TestHome_ExitQuits(t *testing.T) {
	h := testHome(t)

	for range h.menuLabels {
		h.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_View(t *testing.T) {
	h := testHome(t)
	if h.View(120, 40) == "" {
		t.Error("expected non-empty view")
	}
	if h.View(80, 20) == "" {
		t.Error("expected non-empty compact view")
	}
}

func TestHome_Title(t *testing.T) {
	h := testHome(t)
	if h.Title() != "Home" {
		t.Errorf("Title = %q, want Home", h.Title())
	}
}
