package builder

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/screens/summary"
	"github.com/abhisek/foundry/internal/worksheet"
)

// testSheet has a required text question in the first section and an
// optional checklist in the second.
func testSheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		ID:         "test-sheet",
		Title:      "Test Sheet",
		Difficulty: worksheet.DifficultyBeginner,
		Sections: []worksheet.Section{
			{
				ID:    "a",
				Title: "Section A",
				Questions: []worksheet.Question{
					{
						ID:       "q1",
						Kind:     worksheet.KindText,
						Label:    "Your name",
						Required: true,
						Rules:    &worksheet.Rules{MinLength: 3},
					},
					{
						ID:    "q2",
						Kind:  worksheet.KindText,
						Label: "Nickname",
					},
				},
			},
			{
				ID:    "b",
				Title: "Section B",
				Questions: []worksheet.Question{
					{
						ID:      "q3",
						Kind:    worksheet.KindChecklist,
						Label:   "Goals",
						Choices: []string{"revenue", "learning"},
					},
				},
			},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testBuilder() (*BuilderScreen, *draft.Memory) {
	store := draft.NewMemory()
	b := New(testSheet(), store, time.Hour, export.FileSink{Dir: "."}, nil)
	return b, store
}

func typeText(b *BuilderScreen, text string) {
	var scr screen.Screen = b
	for _, r := range text {
		scr, _ = scr.Update(keyPress(r))
	}
}

func TestBuilderScreen_Title(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	if b.Title() != "Test Sheet" {
		t.Errorf("Title = %q, want %q", b.Title(), "Test Sheet")
	}
}

func TestBuilderScreen_TabCommitsAnswer(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	typeText(b, "ada")
	b.Update(specialKey(tea.KeyTab))

	if a, _ := b.session.Answer("q1"); a != worksheet.Text("ada") {
		t.Errorf("q1 = %v, want Text(ada)", a)
	}
	if b.qIndex != 1 {
		t.Errorf("qIndex = %d after tab, want 1", b.qIndex)
	}
}

func TestBuilderScreen_ShiftTabMovesBack(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	b.Update(specialKey(tea.KeyTab))
	b.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if b.qIndex != 0 {
		t.Errorf("qIndex = %d, want 0", b.qIndex)
	}
}

func TestBuilderScreen_EnterAdvancesSingleLineInput(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	typeText(b, "ada")
	b.Update(specialKey(tea.KeyEnter))

	if a, _ := b.session.Answer("q1"); a != worksheet.Text("ada") {
		t.Errorf("q1 = %v, want Text(ada)", a)
	}
	if b.qIndex != 1 {
		t.Errorf("qIndex = %d after enter, want 1", b.qIndex)
	}
}

func TestBuilderScreen_NextBlockedByValidation(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	b.Update(ctrlKey('n'))

	if got := b.session.CurrentSection(); got != 0 {
		t.Errorf("CurrentSection = %d after blocked next, want 0", got)
	}
	if b.notice == "" {
		t.Error("expected a notice explaining the blocked advance")
	}
	if _, bad := b.session.FieldError("q1"); !bad {
		t.Error("expected a field error on q1")
	}
}

func TestBuilderScreen_NextAdvancesWhenValid(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	typeText(b, "ada")
	b.Update(ctrlKey('n'))

	if got := b.session.CurrentSection(); got != 1 {
		t.Errorf("CurrentSection = %d, want 1", got)
	}
	if b.qIndex != 0 {
		t.Errorf("qIndex = %d in new section, want 0", b.qIndex)
	}
}

func TestBuilderScreen_PreviousAlwaysAllowed(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	typeText(b, "ada")
	b.Update(ctrlKey('n'))
	b.Update(ctrlKey('p'))

	if got := b.session.CurrentSection(); got != 0 {
		t.Errorf("CurrentSection = %d, want 0", got)
	}
}

func TestBuilderScreen_CompleteRequiresLastSection(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	_, cmd := b.Update(ctrlKey('d'))
	if cmd != nil {
		t.Error("expected no command for finish away from the last section")
	}
	if b.notice == "" {
		t.Error("expected a notice pointing at the last section")
	}
}

func TestBuilderScreen_CompleteHandsOffToSummary(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	typeText(b, "ada")
	b.Update(ctrlKey('n'))

	_, cmd := b.Update(ctrlKey('d'))
	if cmd == nil {
		t.Fatal("expected a command from finish")
	}
	msg := cmd()
	replaceMsg, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if _, ok := replaceMsg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", replaceMsg.Screen)
	}
	if !b.session.Completed() {
		t.Error("session not marked completed")
	}
}

func TestBuilderScreen_CompleteJumpsBackToInvalidSection(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	if err := b.session.JumpTo(1); err != nil {
		t.Fatal(err)
	}
	b.loadEditor()

	_, cmd := b.Update(ctrlKey('d'))
	if cmd != nil {
		t.Error("expected no hand-off with a missing required answer")
	}
	if got := b.session.CurrentSection(); got != 0 {
		t.Errorf("CurrentSection = %d, want 0 (first invalid)", got)
	}
	if b.qIndex != 0 {
		t.Errorf("qIndex = %d, want 0 (first invalid question)", b.qIndex)
	}
	if b.notice == "" {
		t.Error("expected a validation notice")
	}
}

func TestBuilderScreen_EscSavesAndPops(t *testing.T) {
	b, store := testBuilder()

	typeText(b, "ada")
	_, cmd := b.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command from esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected PopScreenMsg from esc")
	}

	payload, ok, err := store.Get(context.Background(), draft.Key("Test Sheet"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no draft written on exit")
	}
	answers, err := worksheet.DecodeAnswers([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if answers["q1"] != worksheet.Text("ada") {
		t.Errorf("persisted q1 = %v, want Text(ada)", answers["q1"])
	}
}

func TestBuilderScreen_RestoresDraftIntoEditor(t *testing.T) {
	store := draft.NewMemory()
	payload, err := worksheet.EncodeAnswers(map[string]worksheet.Answer{
		"q1": worksheet.Text("grace"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(context.Background(), draft.Key("Test Sheet"), string(payload)); err != nil {
		t.Fatal(err)
	}

	b := New(testSheet(), store, time.Hour, export.FileSink{Dir: "."}, nil)
	defer b.session.Close()

	if got := b.editor.input.Value(); got != "grace" {
		t.Errorf("editor value = %q, want %q", got, "grace")
	}
}

func TestBuilderScreen_KeyHints(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	hints := b.KeyHints()
	if len(hints) == 0 {
		t.Fatal("expected non-empty key hints")
	}
	for _, h := range hints {
		if h.Key == "Ctrl+D" {
			t.Error("finish hint shown away from the last section")
		}
	}

	typeText(b, "ada")
	b.Update(ctrlKey('n'))
	found := false
	for _, h := range b.KeyHints() {
		if h.Key == "Ctrl+D" {
			found = true
		}
	}
	if !found {
		t.Error("finish hint missing on the last section")
	}
}

func TestBuilderScreen_View(t *testing.T) {
	b, _ := testBuilder()
	defer b.session.Close()

	view := b.View(100, 30)
	if view == "" {
		t.Error("expected non-empty view")
	}
}

func TestBuilderScreen_SaveWarningClearsAfterRecovery(t *testing.T) {
	b, store := testBuilder()
	defer b.session.Close()

	store.SetErr = errors.New("disk full")
	typeText(b, "ada")
	b.commit()
	b.session.Save()

	if got := b.saveStatus(); !strings.Contains(got, "autosave failed") {
		t.Fatalf("status = %q, want the failure shown", got)
	}

	store.SetErr = nil
	typeText(b, "m")
	b.commit()
	b.session.Save()

	got := b.saveStatus()
	if strings.Contains(got, "autosave failed") {
		t.Errorf("status = %q, warning should clear once a save succeeds", got)
	}
	if !strings.Contains(got, "Draft saved") {
		t.Errorf("status = %q, want the saved timestamp", got)
	}
}
