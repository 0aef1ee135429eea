package welcome

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/config"
	"github.com/abhisek/foundry/internal/router"
)

func testWelcome(t *testing.T) (*WelcomeScreen, string, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	w := New(dir, cfg)
	w.now = func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}
	return w, dir, cfg
}

func TestWelcome_EnterStartsProgram(t *testing.T) {
	w, dir, cfg := testWelcome(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg on Enter")
	}

	if cfg.Program.StartDate != "2026-03-01" {
		t.Errorf("StartDate = %q, want 2026-03-01", cfg.Program.StartDate)
	}

	saved, err := config.Read(dir)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Program.StartDate != "2026-03-01" {
		t.Errorf("persisted StartDate = %q, want 2026-03-01", saved.Program.StartDate)
	}
}

func TestWelcome_SkipLeavesClockUnset(t *testing.T) {
	w, dir, cfg := testWelcome(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	if cmd == nil {
		t.Fatal("expected a command on S")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg on S")
	}

	if cfg.Program.StartDate != "" {
		t.Errorf("StartDate = %q, want empty after skip", cfg.Program.StartDate)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); !os.IsNotExist(err) {
		t.Error("skip wrote a config file")
	}
}

func TestWelcome_EscLeavesClockUnset(t *testing.T) {
	w, _, cfg := testWelcome(t)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if cfg.Program.StartDate != "" {
		t.Errorf("StartDate = %q, want empty after esc", cfg.Program.StartDate)
	}
}

func TestWelcome_WriteFailureWarnsAndStays(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "not-a-dir")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	w := New(filepath.Join(blocked, "foundry"), cfg)

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no pop when the config write fails")
	}
	if w.warn == "" {
		t.Error("expected a warning after a failed write")
	}
}

func TestWelcome_ViewMentionsStartKey(t *testing.T) {
	w, _, _ := testWelcome(t)
	view := w.View(100, 40)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}

func TestWelcome_TitleEmpty(t *testing.T) {
	w, _, _ := testWelcome(t)
	if w.Title() != "" {
		t.Errorf("Title = %q, want empty", w.Title())
	}
}
