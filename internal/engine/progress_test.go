package engine

import (
	"testing"

	"github.com/abhisek/foundry/internal/worksheet"
)

func TestProgress_IncreasesAsAnswersLand(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	if got := s.Progress(); got != 0 {
		t.Errorf("initial Progress = %d, want 0", got)
	}

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	if got := s.Progress(); got != 50 {
		t.Errorf("Progress after 1 of 2 = %d, want 50", got)
	}

	if err := s.UpdateAnswer("q2", worksheet.Checklist{"revenue"}); err != nil {
		t.Fatal(err)
	}
	if got := s.Progress(); got != 100 {
		t.Errorf("Progress after 2 of 2 = %d, want 100", got)
	}
}

func TestProgress_Rounds(t *testing.T) {
	ws := &worksheet.Worksheet{
		ID:         "r",
		Title:      "Rounding",
		Difficulty: worksheet.DifficultyBeginner,
		Sections: []worksheet.Section{{
			ID:    "s",
			Title: "S",
			Questions: []worksheet.Question{
				{ID: "a", Kind: worksheet.KindText, Label: "A"},
				{ID: "b", Kind: worksheet.KindText, Label: "B"},
				{ID: "c", Kind: worksheet.KindText, Label: "C"},
			},
		}},
	}
	s := New(ws, Options{})
	if err := s.UpdateAnswer("a", worksheet.Text("x")); err != nil {
		t.Fatal(err)
	}

	// 1/3 rounds to 33, 2/3 rounds to 67.
	if got := s.Progress(); got != 33 {
		t.Errorf("Progress = %d, want 33", got)
	}
	if err := s.UpdateAnswer("b", worksheet.Text("y")); err != nil {
		t.Fatal(err)
	}
	if got := s.Progress(); got != 67 {
		t.Errorf("Progress = %d, want 67", got)
	}
}

func TestSectionProgress(t *testing.T) {
	s := New(twoSectionSheet(), Options{})

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}
	if got := s.SectionProgress(0); got != 100 {
		t.Errorf("SectionProgress(0) = %d, want 100", got)
	}
	if got := s.SectionProgress(1); got != 0 {
		t.Errorf("SectionProgress(1) = %d, want 0", got)
	}
}

func TestProgress_EmptySectionIsVacuouslyComplete(t *testing.T) {
	if got := progressOf(nil, nil); got != 100 {
		t.Errorf("progressOf(no questions) = %d, want 100", got)
	}
}

func TestProgress_ScaleAnswerCounts(t *testing.T) {
	ws := &worksheet.Worksheet{
		ID:         "s",
		Title:      "Scales",
		Difficulty: worksheet.DifficultyBeginner,
		Sections: []worksheet.Section{{
			ID:    "s",
			Title: "S",
			Questions: []worksheet.Question{{
				ID:    "hours",
				Kind:  worksheet.KindScale,
				Label: "Hours",
				Scale: worksheet.ScaleRange{Min: 0, Max: 10},
			}},
		}},
	}
	s := New(ws, Options{})

	// A stored scale value counts as answered even when it equals zero.
	if err := s.UpdateAnswer("hours", worksheet.Scale(0)); err != nil {
		t.Fatal(err)
	}
	if got := s.Progress(); got != 100 {
		t.Errorf("Progress = %d, want 100", got)
	}
}
