package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/worksheet"
)

// twoSectionSheet has one required text question (min length 3) in the
// first section and one optional checklist in the second.
func twoSectionSheet() *worksheet.Worksheet {
	return &worksheet.Worksheet{
		ID:          "test-sheet",
		Title:       "Test Sheet",
		Description: "fixture",
		Difficulty:  worksheet.DifficultyBeginner,
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
				},
			},
			{
				ID:    "b",
				Title: "Section B",
				Questions: []worksheet.Question{
					{
						ID:      "q2",
						Kind:    worksheet.KindChecklist,
						Label:   "Goals",
						Choices: []string{"revenue", "learning"},
					},
				},
			},
		},
	}
}

func TestSession_StartsEmptyAtFirstSection(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	if got := s.CurrentSection(); got != 0 {
		t.Errorf("CurrentSection = %d, want 0", got)
	}
	if got := len(s.Answers()); got != 0 {
		t.Errorf("Answers has %d entries, want 0", got)
	}
	if s.Completed() {
		t.Error("new session reports completed")
	}
}

func TestSession_RestoresDraft(t *testing.T) {
	store := draft.NewMemory()
	payload, err := worksheet.EncodeAnswers(map[string]worksheet.Answer{
		"q1": worksheet.Text("hello"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(context.Background(), draft.Key("Test Sheet"), string(payload)); err != nil {
		t.Fatal(err)
	}

	s := New(twoSectionSheet(), Options{Store: store})
	defer s.Close()

	a, ok := s.Answer("q1")
	if !ok {
		t.Fatal("restored session missing q1")
	}
	if a != worksheet.Text("hello") {
		t.Errorf("restored q1 = %v, want Text(hello)", a)
	}
}

func TestSession_RestoreDropsStaleEntries(t *testing.T) {
	store := draft.NewMemory()
	payload, err := worksheet.EncodeAnswers(map[string]worksheet.Answer{
		"q1":   worksheet.Checklist{"wrong shape"},
		"gone": worksheet.Text("question no longer exists"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Set(context.Background(), draft.Key("Test Sheet"), string(payload)); err != nil {
		t.Fatal(err)
	}

	s := New(twoSectionSheet(), Options{Store: store})
	defer s.Close()

	if got := len(s.Answers()); got != 0 {
		t.Errorf("stale draft produced %d answers, want 0", got)
	}
}

func TestSession_RestoreCorruptDraftWarnsAndStartsEmpty(t *testing.T) {
	store := draft.NewMemory()
	if err := store.Set(context.Background(), draft.Key("Test Sheet"), "not json at all"); err != nil {
		t.Fatal(err)
	}

	var warned error
	s := New(twoSectionSheet(), Options{
		Store:       store,
		OnSaveError: func(err error) { warned = err },
	})
	defer s.Close()

	if warned == nil {
		t.Error("corrupt draft produced no warning")
	}
	if got := len(s.Answers()); got != 0 {
		t.Errorf("corrupt draft produced %d answers, want 0", got)
	}
}

func TestUpdateAnswer_UnknownQuestion(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	err := s.UpdateAnswer("nope", worksheet.Text("x"))
	if !errors.Is(err, ErrUnknownQuestion) {
		t.Errorf("err = %v, want ErrUnknownQuestion", err)
	}
}

func TestUpdateAnswer_KindMismatch(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	err := s.UpdateAnswer("q1", worksheet.Checklist{"a"})
	if !errors.Is(err, ErrAnswerKind) {
		t.Errorf("err = %v, want ErrAnswerKind", err)
	}
	if _, ok := s.Answer("q1"); ok {
		t.Error("mismatched answer was stored")
	}
}

func TestUpdateAnswer_ClearsFieldError(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	s.ValidateSection(0)
	if _, ok := s.FieldError("q1"); !ok {
		t.Fatal("expected required error on q1")
	}

	if err := s.UpdateAnswer("q1", worksheet.Text("ab")); err != nil {
		t.Fatal(err)
	}
	if msg, ok := s.FieldError("q1"); ok {
		t.Errorf("field error survived update: %q", msg)
	}
}

func TestUpdateAnswer_EmptyRemovesEntry(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateAnswer("q1", worksheet.Text("")); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Answer("q1"); ok {
		t.Error("empty answer left an entry in the answer-set")
	}
}

func TestSession_AutosavesAfterUpdate(t *testing.T) {
	store := draft.NewMemory()
	s := New(twoSectionSheet(), Options{Store: store, AutosaveDelay: 20 * time.Millisecond})
	defer s.Close()

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)

	payload, ok, err := store.Get(context.Background(), draft.Key("Test Sheet"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("no draft written after the quiet period")
	}
	answers, err := worksheet.DecodeAnswers([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if answers["q1"] != worksheet.Text("hello") {
		t.Errorf("persisted q1 = %v, want Text(hello)", answers["q1"])
	}
	if s.LastSavedAt().IsZero() {
		t.Error("LastSavedAt is zero after a successful save")
	}
}

func TestSession_BurstCoalescesToOneWrite(t *testing.T) {
	store := draft.NewMemory()
	s := New(twoSectionSheet(), Options{Store: store, AutosaveDelay: 30 * time.Millisecond})
	defer s.Close()

	for _, v := range []string{"h", "he", "hel", "hell", "hello"} {
		if err := s.UpdateAnswer("q1", worksheet.Text(v)); err != nil {
			t.Fatal(err)
		}
	}
	time.Sleep(150 * time.Millisecond)

	if store.Writes() != 1 {
		t.Errorf("writes = %d, want 1", store.Writes())
	}
	payload, _, _ := store.Get(context.Background(), draft.Key("Test Sheet"))
	answers, err := worksheet.DecodeAnswers([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	if answers["q1"] != worksheet.Text("hello") {
		t.Errorf("persisted q1 = %v, want the final value", answers["q1"])
	}
}

func TestSession_SaveFailureWarnsButKeepsEditing(t *testing.T) {
	store := draft.NewMemory()
	store.SetErr = errors.New("quota exceeded")

	var warned error
	s := New(twoSectionSheet(), Options{
		Store:       store,
		OnSaveError: func(err error) { warned = err },
	})
	defer s.Close()

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	s.Save()

	if warned == nil {
		t.Error("save failure was not reported")
	}
	if a, _ := s.Answer("q1"); a != worksheet.Text("hello") {
		t.Error("save failure corrupted in-memory answers")
	}
}

func TestUpdateAnswer_AfterCompleteRejected(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	if err := s.Complete(context.Background()); err != nil {
		t.Fatalf("Complete: %v", err)
	}

	err := s.UpdateAnswer("q1", worksheet.Text("changed"))
	if !errors.Is(err, ErrCompleted) {
		t.Errorf("err = %v, want ErrCompleted", err)
	}
}

func TestSession_LastSavedAtUsesInjectedClock(t *testing.T) {
	store := draft.NewMemory()
	stamp := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s := New(twoSectionSheet(), Options{
		Store:         store,
		AutosaveDelay: time.Hour,
		Now:           func() time.Time { return stamp },
	})
	defer s.Close()

	if err := s.UpdateAnswer("q1", worksheet.Text("ada")); err != nil {
		t.Fatal(err)
	}
	s.Save()

	if got := s.LastSavedAt(); !got.Equal(stamp) {
		t.Errorf("LastSavedAt = %v, want %v", got, stamp)
	}
}
