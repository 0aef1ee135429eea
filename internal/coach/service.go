package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/worksheet"
)

const reviewSystemPrompt = `You are a startup coach reviewing a founder's completed worksheet
from an accelerator program. Be direct and specific. Praise concrete
thinking, call out vague or untested assumptions, and suggest next
steps the founder can act on this week. Ground every point in the
founder's actual answers.`

// Feedback is the coach's structured review of a completed worksheet.
type Feedback struct {
	Summary   string   `json:"summary"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
	NextSteps []string `json:"next_steps"`
}

// Service reviews worksheet snapshots with a Provider.
type Service struct {
	provider Provider
}

// NewService creates a review service.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Review sends the snapshot to the model and returns its feedback.
func (s *Service) Review(ctx context.Context, snap engine.Snapshot) (*Feedback, error) {
	resp, err := s.provider.Generate(ctx, Request{
		System: reviewSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: buildReviewPrompt(snap)},
		},
		Schema:    reviewSchema,
		MaxTokens: 1024,
	})
	if err != nil {
		return nil, fmt.Errorf("review %q: %w", snap.WorksheetTitle, err)
	}

	var fb Feedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, &ErrInvalidResponse{
			Content: resp.Content,
			Err:     fmt.Errorf("decode feedback: %w", err),
		}
	}
	return &fb, nil
}

// buildReviewPrompt flattens the snapshot into a readable transcript.
func buildReviewPrompt(snap engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Worksheet: %s\n", snap.WorksheetTitle)

	for _, sec := range snap.Sections {
		fmt.Fprintf(&b, "\n## %s\n", sec.Title)
		for _, q := range sec.Questions {
			fmt.Fprintf(&b, "Q: %s\nA: %s\n", q.Question, formatAnswer(q.Answer))
		}
	}

	b.WriteString("\nReview these answers.")
	return b.String()
}

func formatAnswer(v any) string {
	switch a := v.(type) {
	case nil:
		return "(unanswered)"
	case string:
		if a == "" {
			return "(unanswered)"
		}
		return a
	case worksheet.Text:
		return formatAnswer(string(a))
	case worksheet.LongText:
		return formatAnswer(string(a))
	case worksheet.Choice:
		return formatAnswer(string(a))
	case worksheet.FileRef:
		return formatAnswer(string(a))
	case worksheet.Checklist:
		return strings.Join(a, ", ")
	case worksheet.Ranking:
		var parts []string
		for i, item := range a {
			parts = append(parts, fmt.Sprintf("%d. %s", i+1, item))
		}
		return strings.Join(parts, " ")
	case worksheet.Scale:
		return strconv.Itoa(int(a))
	default:
		raw, err := json.Marshal(a)
		if err != nil {
			return fmt.Sprint(a)
		}
		return string(raw)
	}
}
