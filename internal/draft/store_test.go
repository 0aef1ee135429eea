package draft

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Founder Onboarding", "founder-onboarding"},
		{"  Lots   of \t whitespace ", "lots-of-whitespace"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"UPPER", "upper"},
	}
	for _, tt := range tests {
		if got := Slug(tt.title); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	if got := Key("Founder Onboarding"); got != "worksheet-founder-onboarding" {
		t.Errorf("Key = %q, want worksheet-founder-onboarding", got)
	}
}
