package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
)

// Snapshot is the exportable form of a session: worksheet title,
// completion time and every question paired with its answer, in
// worksheet order. Unanswered questions export as the empty string.
type Snapshot struct {
	WorksheetTitle string            `json:"worksheet_title"`
	CompletedAt    time.Time         `json:"completed_at"`
	Sections       []SnapshotSection `json:"sections"`
}

type SnapshotSection struct {
	Title     string             `json:"title"`
	Questions []SnapshotQuestion `json:"questions"`
}

type SnapshotQuestion struct {
	Question string `json:"question"`
	Answer   any    `json:"answer"`
}

// Snapshot builds the export payload from the current answer-set. For
// a completed session CompletedAt is the completion time; otherwise it
// is the time of the call.
func (s *Session) Snapshot() Snapshot {
	at := s.completedAt
	if at.IsZero() {
		at = s.now()
	}

	snap := Snapshot{
		WorksheetTitle: s.ws.Title,
		CompletedAt:    at,
	}
	for _, sec := range s.ws.Sections {
		ss := SnapshotSection{Title: sec.Title}
		for _, q := range sec.Questions {
			var val any = ""
			if a, ok := s.answers[q.ID]; ok {
				val = a
			}
			ss.Questions = append(ss.Questions, SnapshotQuestion{
				Question: q.Label,
				Answer:   val,
			})
		}
		snap.Sections = append(snap.Sections, ss)
	}
	return snap
}

// ExportFilename is the artifact name for this session's worksheet.
func (s *Session) ExportFilename() string {
	return draft.Slug(s.ws.Title) + "-answers.json"
}

// Export serializes the snapshot and hands it to the sink. The sink
// owns delivery; a failure there leaves the session untouched.
func (s *Session) Export(sink export.Sink) error {
	content, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := sink.Deliver(s.ExportFilename(), "application/json", content); err != nil {
		return fmt.Errorf("export %q: %w", s.ws.Title, err)
	}
	return nil
}
