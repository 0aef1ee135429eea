package engine

import (
	"math"

	"github.com/abhisek/foundry/internal/worksheet"
)

// Progress returns overall completion as a percentage in [0,100].
// Derived on demand, never cached, so it can't go stale.
func (s *Session) Progress() int {
	var qs []worksheet.Question
	for _, sec := range s.ws.Sections {
		qs = append(qs, sec.Questions...)
	}
	return progressOf(qs, s.answers)
}

// SectionProgress returns completion for a single section.
func (s *Session) SectionProgress(index int) int {
	if index < 0 || index >= len(s.ws.Sections) {
		return 0
	}
	return progressOf(s.ws.Sections[index].Questions, s.answers)
}

// progressOf counts a question as answered iff an answer is present and
// non-empty. A scope with zero questions is vacuously complete.
func progressOf(qs []worksheet.Question, answers map[string]worksheet.Answer) int {
	if len(qs) == 0 {
		return 100
	}
	answered := 0
	for _, q := range qs {
		if a, ok := answers[q.ID]; ok && !a.Empty() {
			answered++
		}
	}
	return int(math.Round(100 * float64(answered) / float64(len(qs))))
}
