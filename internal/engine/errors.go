package engine

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownQuestion means a caller referenced a question id that is
	// not part of the loaded worksheet. This is an integration bug and
	// fails loudly rather than being silently ignored.
	ErrUnknownQuestion = errors.New("unknown question")

	// ErrAnswerKind means an answer's shape does not match the question
	// kind it was stored under.
	ErrAnswerKind = errors.New("answer kind mismatch")

	// ErrCompleted means the session has already been completed. A fresh
	// session is required to continue editing.
	ErrCompleted = errors.New("session already completed")
)

// SectionFailure names a section that failed validation and the fields
// within it that produced errors.
type SectionFailure struct {
	Index  int
	Title  string
	Fields map[string]string
}

// ValidationFailure reports every section that failed validation during
// Complete. It is a value, not a fatal condition; the session remains
// editable and the caller can navigate to the first failing section.
type ValidationFailure struct {
	Sections []SectionFailure
}

func (e *ValidationFailure) Error() string {
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, s := range e.Sections {
		fmt.Fprintf(&b, " section %q (%d fields)", s.Title, len(s.Fields))
	}
	return b.String()
}

// FirstSection returns the index of the first failing section.
func (e *ValidationFailure) FirstSection() int {
	if len(e.Sections) == 0 {
		return 0
	}
	return e.Sections[0].Index
}
