package worksheet

// Kind identifies how a question is asked and what shape its answer takes.
type Kind string

const (
	KindText         Kind = "text"
	KindLongText     Kind = "long_text"
	KindSingleChoice Kind = "single_choice"
	KindChecklist    Kind = "multi_choice_checklist"
	KindScale        Kind = "scale"
	KindRanking      Kind = "ranking"
	KindMatrix       Kind = "matrix"
	KindFileUpload   Kind = "file_upload"
)

// AllKinds returns every question kind, in schema order.
func AllKinds() []Kind {
	return []Kind{
		KindText,
		KindLongText,
		KindSingleChoice,
		KindChecklist,
		KindScale,
		KindRanking,
		KindMatrix,
		KindFileUpload,
	}
}

// TextLike reports whether answers of this kind are free text, which is
// the only case where length and pattern rules apply.
func (k Kind) TextLike() bool {
	return k == KindText || k == KindLongText
}

// listShaped reports whether answers of this kind are ordered string lists.
func (k Kind) listShaped() bool {
	return k == KindChecklist || k == KindRanking
}

// Difficulty rates a worksheet for the catalog listing.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ScaleRange bounds a scale question. Labels annotate the two endpoints.
type ScaleRange struct {
	Min    int       `json:"min"`
	Max    int       `json:"max"`
	Labels [2]string `json:"labels"`
}

// Rules holds optional validation constraints for text-like questions.
type Rules struct {
	MinLength int    `json:"min_length,omitempty"`
	MaxLength int    `json:"max_length,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// Question is a single prompt within a section. The ID is the answer-map
// key and must be stable across sessions.
type Question struct {
	ID          string     `json:"id"`
	Kind        Kind       `json:"kind"`
	Label       string     `json:"label"`
	HelpText    string     `json:"help_text,omitempty"`
	Placeholder string     `json:"placeholder,omitempty"`
	Hint        string     `json:"hint,omitempty"`
	Required    bool       `json:"required"`
	Choices     []string   `json:"choices,omitempty"`
	Scale       ScaleRange `json:"scale,omitempty"`
	Rows        []string   `json:"rows,omitempty"`
	Columns     []string   `json:"columns,omitempty"`
	Rules       *Rules     `json:"rules,omitempty"`
}

// Section groups questions that are presented and validated as a unit.
type Section struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	TimeEstimate string     `json:"time_estimate,omitempty"`
	Objectives   []string   `json:"objectives,omitempty"`
	Questions    []Question `json:"questions"`
}

// Worksheet is a named, ordered collection of sections. Catalog entries
// are immutable once registered; the engine never mutates them.
type Worksheet struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Difficulty    Difficulty `json:"difficulty"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	Objectives    []string   `json:"objectives,omitempty"`
	Sections      []Section  `json:"sections"`
}

// TotalQuestions returns the number of questions across all sections.
func (w *Worksheet) TotalQuestions() int {
	n := 0
	for _, s := range w.Sections {
		n += len(s.Questions)
	}
	return n
}

// Question returns the question with the given id, or nil if absent.
func (w *Worksheet) Question(id string) *Question {
	for si := range w.Sections {
		for qi := range w.Sections[si].Questions {
			if w.Sections[si].Questions[qi].ID == id {
				return &w.Sections[si].Questions[qi]
			}
		}
	}
	return nil
}
