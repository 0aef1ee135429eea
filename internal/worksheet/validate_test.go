package worksheet

import (
	"strings"
	"testing"
)

func validSheet() *Worksheet {
	return &Worksheet{
		ID:         "test-sheet",
		Title:      "Test Sheet",
		Difficulty: DifficultyBeginner,
		Sections: []Section{
			{
				ID:    "s1",
				Title: "Section One",
				Questions: []Question{
					{ID: "q1", Kind: KindText, Label: "Name?", Required: true},
					{ID: "q2", Kind: KindSingleChoice, Label: "Pick one", Choices: []string{"a", "b"}},
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validSheet()); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_DuplicateQuestionID(t *testing.T) {
	ws := validSheet()
	ws.Sections[0].Questions[1].ID = "q1"

	err := Validate(ws)
	if err == nil {
		t.Fatal("expected error for duplicate question id")
	}
	if !strings.Contains(err.Error(), "duplicate question id") {
		t.Errorf("error = %q, want mention of duplicate question id", err)
	}
}

func TestValidate_ChoiceKindNeedsChoices(t *testing.T) {
	ws := validSheet()
	ws.Sections[0].Questions[1].Choices = []string{"only one"}

	if err := Validate(ws); err == nil {
		t.Fatal("expected error for single-choice question with one choice")
	}
}

func TestValidate_ScaleBounds(t *testing.T) {
	ws := validSheet()
	ws.Sections[0].Questions = append(ws.Sections[0].Questions, Question{
		ID: "q3", Kind: KindScale, Label: "Rate", Scale: ScaleRange{Min: 5, Max: 5},
	})

	if err := Validate(ws); err == nil {
		t.Fatal("expected error for scale with min >= max")
	}
}

func TestValidate_BadPattern(t *testing.T) {
	ws := validSheet()
	ws.Sections[0].Questions[0].Rules = &Rules{Pattern: "("}

	if err := Validate(ws); err == nil {
		t.Fatal("expected error for uncompilable pattern")
	}
}

func TestValidate_RulesOnNonTextKind(t *testing.T) {
	ws := validSheet()
	ws.Sections[0].Questions[1].Rules = &Rules{MinLength: 3}

	if err := Validate(ws); err == nil {
		t.Fatal("expected error for length rules on a choice question")
	}
}

func TestValidate_EmptySection(t *testing.T) {
	ws := validSheet()
	ws.Sections = append(ws.Sections, Section{ID: "s2", Title: "Empty"})

	if err := Validate(ws); err == nil {
		t.Fatal("expected error for section with no questions")
	}
}
