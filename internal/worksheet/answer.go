package worksheet

import (
	"encoding/json"
	"fmt"
)

// Answer is a tagged answer value. Each question kind has exactly one
// concrete answer type, so the shape of a stored answer is statically
// known at every use site instead of asserted at runtime.
type Answer interface {
	// Kind returns the question kind this answer shape belongs to.
	Kind() Kind

	// Empty reports whether the answer counts as unanswered for
	// progress and required-field checks.
	Empty() bool
}

// Text answers a KindText question.
type Text string

func (Text) Kind() Kind    { return KindText }
func (t Text) Empty() bool { return t == "" }

// LongText answers a KindLongText question.
type LongText string

func (LongText) Kind() Kind    { return KindLongText }
func (t LongText) Empty() bool { return t == "" }

// Choice answers a KindSingleChoice question with one of its choices.
type Choice string

func (Choice) Kind() Kind    { return KindSingleChoice }
func (c Choice) Empty() bool { return c == "" }

// Checklist answers a KindChecklist question with the checked choices,
// in the order they were checked.
type Checklist []string

func (Checklist) Kind() Kind    { return KindChecklist }
func (c Checklist) Empty() bool { return len(c) == 0 }

// Ranking answers a KindRanking question with choices ordered from
// first to last.
type Ranking []string

func (Ranking) Kind() Kind    { return KindRanking }
func (r Ranking) Empty() bool { return len(r) == 0 }

// Scale answers a KindScale question. A stored scale value always counts
// as answered; an untouched scale question is simply absent from the set.
type Scale int

func (Scale) Kind() Kind  { return KindScale }
func (Scale) Empty() bool { return false }

// Matrix answers a KindMatrix question, mapping each row to the selected
// column.
type Matrix map[string]string

func (Matrix) Kind() Kind    { return KindMatrix }
func (m Matrix) Empty() bool { return len(m) == 0 }

// FileRef answers a KindFileUpload question with a local file path.
type FileRef string

func (FileRef) Kind() Kind    { return KindFileUpload }
func (f FileRef) Empty() bool { return f == "" }

// envelope is the persisted form of a single answer: the kind tag plus
// the bare JSON value of the concrete type.
type envelope struct {
	Kind  Kind            `json:"kind"`
	Value json.RawMessage `json:"value"`
}

// EncodeAnswers serializes an answer-set for the persistence channel.
// Keys for unanswered questions are absent, never null.
func EncodeAnswers(answers map[string]Answer) ([]byte, error) {
	out := make(map[string]envelope, len(answers))
	for id, a := range answers {
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, fmt.Errorf("encode answer %q: %w", id, err)
		}
		out[id] = envelope{Kind: a.Kind(), Value: raw}
	}
	return json.Marshal(out)
}

// DecodeAnswers parses a persisted answer-set. Entries with an unknown
// kind tag fail loudly rather than being dropped.
func DecodeAnswers(data []byte) (map[string]Answer, error) {
	var raw map[string]envelope
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode answer set: %w", err)
	}

	answers := make(map[string]Answer, len(raw))
	for id, env := range raw {
		a, err := decodeAnswer(env)
		if err != nil {
			return nil, fmt.Errorf("decode answer %q: %w", id, err)
		}
		answers[id] = a
	}
	return answers, nil
}

func decodeAnswer(env envelope) (Answer, error) {
	switch env.Kind {
	case KindText:
		var v Text
		return v, json.Unmarshal(env.Value, &v)
	case KindLongText:
		var v LongText
		return v, json.Unmarshal(env.Value, &v)
	case KindSingleChoice:
		var v Choice
		return v, json.Unmarshal(env.Value, &v)
	case KindChecklist:
		var v Checklist
		return v, json.Unmarshal(env.Value, &v)
	case KindRanking:
		var v Ranking
		return v, json.Unmarshal(env.Value, &v)
	case KindScale:
		var v Scale
		return v, json.Unmarshal(env.Value, &v)
	case KindMatrix:
		var v Matrix
		return v, json.Unmarshal(env.Value, &v)
	case KindFileUpload:
		var v FileRef
		return v, json.Unmarshal(env.Value, &v)
	default:
		return nil, fmt.Errorf("unknown answer kind %q", env.Kind)
	}
}

// Length returns the rune count of a text-like answer, or 0 for other
// shapes. Used by length validation rules.
func Length(a Answer) int {
	switch v := a.(type) {
	case Text:
		return len([]rune(string(v)))
	case LongText:
		return len([]rune(string(v)))
	default:
		return 0
	}
}

// TextValue returns the string content of a text-like answer.
func TextValue(a Answer) (string, bool) {
	switch v := a.(type) {
	case Text:
		return string(v), true
	case LongText:
		return string(v), true
	default:
		return "", false
	}
}
