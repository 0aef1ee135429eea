package worksheet

import (
	"testing"
)

func TestEncodeDecodeAnswers_RoundTrip(t *testing.T) {
	in := map[string]Answer{
		"name":    Text("Ada"),
		"story":   LongText("a long answer"),
		"stage":   Choice("Revenue-generating business"),
		"goals":   Checklist{"Talk to real customers", "Launch publicly and get first users"},
		"ranked":  Ranking{"b", "a", "c"},
		"hours":   Scale(20),
		"ratings": Matrix{"Price": "Strong"},
	}

	data, err := EncodeAnswers(in)
	if err != nil {
		t.Fatalf("EncodeAnswers: %v", err)
	}

	out, err := DecodeAnswers(data)
	if err != nil {
		t.Fatalf("DecodeAnswers: %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("decoded %d answers, want %d", len(out), len(in))
	}
	for id, a := range in {
		got, ok := out[id]
		if !ok {
			t.Errorf("answer %q missing after round trip", id)
			continue
		}
		if got.Kind() != a.Kind() {
			t.Errorf("answer %q kind = %q, want %q", id, got.Kind(), a.Kind())
		}
	}

	if got := out["ranked"].(Ranking); got[0] != "b" || got[2] != "c" {
		t.Errorf("ranking order not preserved: %v", got)
	}
	if got := out["hours"].(Scale); got != 20 {
		t.Errorf("scale = %d, want 20", got)
	}
}

func TestDecodeAnswers_UnknownKind(t *testing.T) {
	_, err := DecodeAnswers([]byte(`{"q1": {"kind": "telepathy", "value": "42"}}`))
	if err == nil {
		t.Fatal("expected error for unknown answer kind")
	}
}

func TestAnswer_Empty(t *testing.T) {
	tests := []struct {
		name   string
		answer Answer
		want   bool
	}{
		{"empty text", Text(""), true},
		{"filled text", Text("x"), false},
		{"empty checklist", Checklist{}, true},
		{"filled checklist", Checklist{"a"}, false},
		{"empty ranking", Ranking(nil), true},
		{"scale zero still answered", Scale(0), false},
		{"empty matrix", Matrix{}, true},
	}
	for _, tt := range tests {
		if got := tt.answer.Empty(); got != tt.want {
			t.Errorf("%s: Empty() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestLength_TextLikeOnly(t *testing.T) {
	if got := Length(LongText("héllo")); got != 5 {
		t.Errorf("Length(héllo) = %d, want 5 (runes, not bytes)", got)
	}
	if got := Length(Checklist{"a", "b"}); got != 0 {
		t.Errorf("Length(checklist) = %d, want 0", got)
	}
}
