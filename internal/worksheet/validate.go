package worksheet

import (
	"fmt"
	"regexp"
	"strings"
)

// Validate performs all structural checks on a worksheet definition.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(ws *Worksheet) error {
	var errs []string

	if ws.ID == "" {
		errs = append(errs, "worksheet has no id")
	}
	if ws.Title == "" {
		errs = append(errs, fmt.Sprintf("worksheet %q has no title", ws.ID))
	}
	switch ws.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
	default:
		errs = append(errs, fmt.Sprintf("worksheet %q has invalid difficulty %q", ws.ID, ws.Difficulty))
	}
	if len(ws.Sections) == 0 {
		errs = append(errs, fmt.Sprintf("worksheet %q has no sections", ws.ID))
	}

	knownKinds := make(map[Kind]bool)
	for _, k := range AllKinds() {
		knownKinds[k] = true
	}

	idSet := make(map[string]bool)
	sectionIDSet := make(map[string]bool)

	for _, sec := range ws.Sections {
		if sec.ID == "" {
			errs = append(errs, fmt.Sprintf("worksheet %q has a section with no id", ws.ID))
		}
		if sectionIDSet[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section id: %q", sec.ID))
		}
		sectionIDSet[sec.ID] = true

		if len(sec.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", sec.ID))
		}

		for _, q := range sec.Questions {
			if q.ID == "" {
				errs = append(errs, fmt.Sprintf("section %q has a question with no id", sec.ID))
				continue
			}
			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question id: %q", q.ID))
			}
			idSet[q.ID] = true

			errs = append(errs, validateQuestion(knownKinds, &q)...)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid worksheet definition:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(knownKinds map[Kind]bool, q *Question) []string {
	var errs []string

	if !knownKinds[q.Kind] {
		errs = append(errs, fmt.Sprintf("question %q has unknown kind %q", q.ID, q.Kind))
		return errs
	}
	if q.Label == "" {
		errs = append(errs, fmt.Sprintf("question %q has no label", q.ID))
	}

	switch q.Kind {
	case KindSingleChoice, KindChecklist, KindRanking:
		if len(q.Choices) < 2 {
			errs = append(errs, fmt.Sprintf("question %q (%s) needs at least 2 choices", q.ID, q.Kind))
		}
	case KindScale:
		if q.Scale.Min >= q.Scale.Max {
			errs = append(errs, fmt.Sprintf("question %q has invalid scale range [%d, %d]", q.ID, q.Scale.Min, q.Scale.Max))
		}
	case KindMatrix:
		if len(q.Rows) == 0 || len(q.Columns) == 0 {
			errs = append(errs, fmt.Sprintf("question %q (matrix) needs rows and columns", q.ID))
		}
	}

	if q.Rules != nil {
		if !q.Kind.TextLike() {
			errs = append(errs, fmt.Sprintf("question %q (%s) cannot carry text validation rules", q.ID, q.Kind))
		}
		if q.Rules.MinLength < 0 || q.Rules.MaxLength < 0 {
			errs = append(errs, fmt.Sprintf("question %q has negative length rule", q.ID))
		}
		if q.Rules.MinLength > 0 && q.Rules.MaxLength > 0 && q.Rules.MinLength > q.Rules.MaxLength {
			errs = append(errs, fmt.Sprintf("question %q has min length %d > max length %d", q.ID, q.Rules.MinLength, q.Rules.MaxLength))
		}
		if q.Rules.Pattern != "" {
			if _, err := regexp.Compile(q.Rules.Pattern); err != nil {
				errs = append(errs, fmt.Sprintf("question %q has invalid pattern: %v", q.ID, err))
			}
		}
	}

	return errs
}
