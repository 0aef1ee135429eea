// Package engine drives a single worksheet-filling session: collecting
// typed answers, validating sections, computing progress, stepping
// between sections and persisting drafts along the way.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/worksheet"
)

// Options configures a new session. Store may be nil, in which case
// drafts are neither restored nor saved.
type Options struct {
	Store draft.Store

	// AutosaveDelay is the debounce quiet period. Zero selects
	// draft.DefaultDelay.
	AutosaveDelay time.Duration

	// OnSaveError receives persistence failures. They are surfaced as
	// warnings and never block editing.
	OnSaveError func(error)

	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Session owns the mutable state of one worksheet being filled in. It
// is not safe for concurrent use; all transitions happen on the event
// loop that drives the UI.
type Session struct {
	id uuid.UUID
	ws *worksheet.Worksheet

	answers     map[string]worksheet.Answer
	current     int
	fieldErrors map[string]string

	store       draft.Store
	saver       *draft.Autosaver
	key         string
	onSaveError func(error)

	completed   bool
	completedAt time.Time
	now         func() time.Time
}

// New opens a session for ws, seeding answers from a persisted draft
// when one exists. Draft entries that no longer match the worksheet
// (unknown question, wrong answer shape) are dropped on restore.
func New(ws *worksheet.Worksheet, opts Options) *Session {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		id:          uuid.New(),
		ws:          ws,
		answers:     make(map[string]worksheet.Answer),
		fieldErrors: make(map[string]string),
		store:       opts.Store,
		key:         draft.Key(ws.Title),
		onSaveError: opts.OnSaveError,
		now:         now,
	}

	if opts.Store != nil {
		s.restore(opts.Store)
		s.saver = draft.NewAutosaver(opts.Store, s.key, opts.AutosaveDelay, now, opts.OnSaveError)
	}
	return s
}

// restore seeds answers from the draft store. Failures here degrade to
// an empty session; a corrupt draft must not block the user.
func (s *Session) restore(store draft.Store) {
	payload, ok, err := store.Get(context.Background(), s.key)
	if err != nil {
		s.reportSaveError(fmt.Errorf("restore draft: %w", err))
		return
	}
	if !ok {
		return
	}

	answers, err := worksheet.DecodeAnswers([]byte(payload))
	if err != nil {
		s.reportSaveError(fmt.Errorf("restore draft: %w", err))
		return
	}

	for id, a := range answers {
		q := s.ws.Question(id)
		if q == nil || q.Kind != a.Kind() || a.Empty() {
			continue
		}
		s.answers[id] = a
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Worksheet returns the worksheet this session is filling in.
func (s *Session) Worksheet() *worksheet.Worksheet { return s.ws }

// Completed reports whether Complete has succeeded.
func (s *Session) Completed() bool { return s.completed }

// UpdateAnswer replaces the answer for a question and clears any stale
// field error for it. Errors are re-derived at validation time, not on
// every keystroke. An empty answer removes the entry entirely so that
// unset keys stay absent.
func (s *Session) UpdateAnswer(id string, a worksheet.Answer) error {
	if s.completed {
		return ErrCompleted
	}

	q := s.ws.Question(id)
	if q == nil {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	if a != nil && a.Kind() != q.Kind {
		return fmt.Errorf("%w: question %q is %s, got %s", ErrAnswerKind, id, q.Kind, a.Kind())
	}

	if a == nil || a.Empty() {
		delete(s.answers, id)
	} else {
		s.answers[id] = a
	}
	delete(s.fieldErrors, id)

	s.scheduleSave()
	return nil
}

// Answer returns the stored answer for a question, if any.
func (s *Session) Answer(id string) (worksheet.Answer, bool) {
	a, ok := s.answers[id]
	return a, ok
}

// Answers returns a copy of the current answer-set.
func (s *Session) Answers() map[string]worksheet.Answer {
	out := make(map[string]worksheet.Answer, len(s.answers))
	for id, a := range s.answers {
		out[id] = a
	}
	return out
}

// FieldError returns the current validation message for a question.
func (s *Session) FieldError(id string) (string, bool) {
	msg, ok := s.fieldErrors[id]
	return msg, ok
}

// FieldErrors returns a copy of the current field-error map.
func (s *Session) FieldErrors() map[string]string {
	out := make(map[string]string, len(s.fieldErrors))
	for id, msg := range s.fieldErrors {
		out[id] = msg
	}
	return out
}

// LastSavedAt returns the time of the most recent successful draft
// write, or the zero time.
func (s *Session) LastSavedAt() time.Time {
	if s.saver == nil {
		return time.Time{}
	}
	return s.saver.LastSaved()
}

// Save flushes any pending draft write immediately.
func (s *Session) Save() {
	if s.saver != nil {
		s.saver.Flush()
	}
}

// Close releases the session's autosaver, flushing a pending draft.
// Abandoning a session this way keeps the draft for later resumption.
func (s *Session) Close() {
	if s.saver != nil {
		s.saver.Close()
	}
}

func (s *Session) scheduleSave() {
	if s.saver == nil {
		return
	}
	payload, err := worksheet.EncodeAnswers(s.answers)
	if err != nil {
		s.reportSaveError(fmt.Errorf("encode draft: %w", err))
		return
	}
	s.saver.Schedule(string(payload))
}

func (s *Session) reportSaveError(err error) {
	if s.onSaveError != nil {
		s.onSaveError(err)
	}
}
