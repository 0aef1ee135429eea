package engine

import (
	"context"
	"fmt"
)

// Complete validates every section and, if all pass, finalizes the
// session: the persisted draft is cleared and no further edits are
// accepted. Optional questions may remain unanswered; only required
// fields and explicit rules gate completion.
//
// On failure it returns a *ValidationFailure naming the failing
// sections and fields, leaves all state intact, and the session stays
// editable.
func (s *Session) Complete(ctx context.Context) error {
	if s.completed {
		return ErrCompleted
	}

	var failure ValidationFailure
	for i := range s.ws.Sections {
		if s.ValidateSection(i) {
			continue
		}
		fields := make(map[string]string)
		for _, q := range s.ws.Sections[i].Questions {
			if msg, ok := s.fieldErrors[q.ID]; ok {
				fields[q.ID] = msg
			}
		}
		failure.Sections = append(failure.Sections, SectionFailure{
			Index:  i,
			Title:  s.ws.Sections[i].Title,
			Fields: fields,
		})
	}
	if len(failure.Sections) > 0 {
		return &failure
	}

	s.completed = true
	s.completedAt = s.now()

	if s.saver != nil {
		s.saver.Discard()
	}
	if s.store != nil {
		if err := s.store.Remove(ctx, s.key); err != nil {
			s.reportSaveError(fmt.Errorf("clear draft: %w", err))
		}
	}
	return nil
}
