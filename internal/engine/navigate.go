package engine

import (
	"fmt"

	"github.com/abhisek/foundry/internal/worksheet"
)

// CurrentSection returns the index of the section being filled in.
// It is always a valid index into the worksheet's sections.
func (s *Session) CurrentSection() int { return s.current }

// Section returns the section being filled in.
func (s *Session) Section() *worksheet.Section {
	return &s.ws.Sections[s.current]
}

// SectionCount returns the number of sections in the worksheet.
func (s *Session) SectionCount() int { return len(s.ws.Sections) }

// IsLast reports whether the current section is the final one.
func (s *Session) IsLast() bool { return s.current == len(s.ws.Sections)-1 }

// Next validates the current section and, if it passes, advances to the
// following section (a no-op on the last). On validation failure the
// index stays put and field errors are populated for display. Returns
// whether the section validated.
func (s *Session) Next() bool {
	if !s.ValidateSection(s.current) {
		return false
	}
	if s.current < len(s.ws.Sections)-1 {
		s.current++
	}
	return true
}

// Previous steps back one section, clamped at the first. Going backward
// is never gated on validation.
func (s *Session) Previous() {
	if s.current > 0 {
		s.current--
	}
}

// JumpTo navigates directly to a section, e.g. via a section tab. It is
// deliberately permissive: later sections may be visited before earlier
// ones validate, so the user can preview content.
func (s *Session) JumpTo(index int) error {
	if index < 0 || index >= len(s.ws.Sections) {
		return fmt.Errorf("section index %d out of range [0,%d)", index, len(s.ws.Sections))
	}
	s.current = index
	return nil
}
