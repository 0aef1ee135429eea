package engine

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/foundry/internal/worksheet"
)

type captureSink struct {
	filename string
	mimeType string
	content  []byte
	err      error
}

func (c *captureSink) Deliver(filename, mimeType string, content []byte) error {
	if c.err != nil {
		return c.err
	}
	c.filename = filename
	c.mimeType = mimeType
	c.content = content
	return nil
}

func TestExport_Snapshot(t *testing.T) {
	at := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	s := New(twoSectionSheet(), Options{Now: func() time.Time { return at }})

	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}

	sink := &captureSink{}
	if err := s.Export(sink); err != nil {
		t.Fatalf("Export: %v", err)
	}

	if sink.filename != "test-sheet-answers.json" {
		t.Errorf("filename = %q, want test-sheet-answers.json", sink.filename)
	}
	if sink.mimeType != "application/json" {
		t.Errorf("mimeType = %q, want application/json", sink.mimeType)
	}

	var snap Snapshot
	if err := json.Unmarshal(sink.content, &snap); err != nil {
		t.Fatalf("exported content is not valid JSON: %v", err)
	}
	if snap.WorksheetTitle != "Test Sheet" {
		t.Errorf("WorksheetTitle = %q", snap.WorksheetTitle)
	}
	if !snap.CompletedAt.Equal(at) {
		t.Errorf("CompletedAt = %v, want %v", snap.CompletedAt, at)
	}
	if len(snap.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(snap.Sections))
	}
	if got := snap.Sections[0].Questions[0].Answer; got != "hello" {
		t.Errorf("q1 answer = %v, want hello", got)
	}
	// Unanswered optional questions export as the empty string.
	if got := snap.Sections[1].Questions[0].Answer; got != "" {
		t.Errorf("q2 answer = %v, want empty string", got)
	}
}

func TestExport_SinkFailureLeavesSessionIntact(t *testing.T) {
	s := New(twoSectionSheet(), Options{})
	if err := s.UpdateAnswer("q1", worksheet.Text("hello")); err != nil {
		t.Fatal(err)
	}

	sink := &captureSink{err: errors.New("disk full")}
	if err := s.Export(sink); err == nil {
		t.Fatal("Export succeeded with a failing sink")
	}
	if a, _ := s.Answer("q1"); a != worksheet.Text("hello") {
		t.Error("export failure corrupted answers")
	}
}
