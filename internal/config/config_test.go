package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Coach.Provider = "gemini"
	cfg.Export.Dir = "/tmp/foundry-exports"
	cfg.Program.StartDate = "2026-08-01"

	if err := Write(tmpDir, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Read(tmpDir)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.Coach.Provider != "gemini" {
		t.Errorf("Coach.Provider: got %q, want gemini", loaded.Coach.Provider)
	}
	if loaded.Export.Dir != "/tmp/foundry-exports" {
		t.Errorf("Export.Dir: got %q", loaded.Export.Dir)
	}
	if loaded.Program.StartDate != "2026-08-01" {
		t.Errorf("Program.StartDate: got %q", loaded.Program.StartDate)
	}
}

func TestReadMissingFileReturnsDefaults(t *testing.T) {
	loaded, err := Read(t.TempDir())
	if err != nil {
		t.Fatalf("Read of empty dir failed: %v", err)
	}
	if loaded.Coach.Provider != "anthropic" {
		t.Errorf("default Coach.Provider: got %q, want anthropic", loaded.Coach.Provider)
	}
	if loaded.Drafts.AutosaveDelay != 2*time.Second {
		t.Errorf("default AutosaveDelay: got %v, want 2s", loaded.Drafts.AutosaveDelay)
	}
}

func TestReadMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte("coach: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Read(tmpDir); err == nil {
		t.Error("malformed YAML did not error")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	partial := "version: 1\ncoach:\n  provider: openai\n"
	if err := os.WriteFile(filepath.Join(tmpDir, "config.yaml"), []byte(partial), 0o644); err != nil {
		t.Fatal(err)
	}

	loaded, err := Read(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Coach.Provider != "openai" {
		t.Errorf("Coach.Provider: got %q, want openai", loaded.Coach.Provider)
	}
	// Fields absent from the file keep their defaults.
	if loaded.Export.Dir != "exports" {
		t.Errorf("Export.Dir: got %q, want exports", loaded.Export.Dir)
	}
}

func TestStartDate(t *testing.T) {
	cfg := Default()

	zero, err := cfg.StartDate()
	if err != nil {
		t.Fatal(err)
	}
	if !zero.IsZero() {
		t.Error("empty start_date parsed to non-zero time")
	}

	cfg.Program.StartDate = "2026-08-01"
	got, err := cfg.StartDate()
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartDate = %v, want %v", got, want)
	}

	cfg.Program.StartDate = "not-a-date"
	if _, err := cfg.StartDate(); err == nil {
		t.Error("invalid start_date did not error")
	}
}
