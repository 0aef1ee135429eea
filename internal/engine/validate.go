package engine

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/abhisek/foundry/internal/worksheet"
)

// ValidateQuestion checks one question against the answer-set and
// returns a user-facing message, or "" when the answer is acceptable.
// It is pure: no state is read or written beyond its arguments.
//
// Check order, first match wins: required, min length, max length,
// pattern. Length and pattern rules apply to text-like kinds only.
func ValidateQuestion(q *worksheet.Question, answers map[string]worksheet.Answer) string {
	a, present := answers[q.ID]

	if q.Required && (!present || a.Empty()) {
		return fmt.Sprintf("%s is required", q.Label)
	}
	if !present || !q.Kind.TextLike() || q.Rules == nil {
		return ""
	}

	n := worksheet.Length(a)
	if q.Rules.MinLength > 0 && n < q.Rules.MinLength {
		return fmt.Sprintf("must be at least %d characters (currently %d)", q.Rules.MinLength, n)
	}
	if q.Rules.MaxLength > 0 && n > q.Rules.MaxLength {
		return fmt.Sprintf("must be at most %d characters (currently %d)", q.Rules.MaxLength, n)
	}
	if q.Rules.Pattern != "" {
		text, _ := worksheet.TextValue(a)
		re, err := compilePattern(q.Rules.Pattern)
		if err != nil || !re.MatchString(text) {
			return "does not match the expected format"
		}
	}
	return ""
}

// ValidateSection runs ValidateQuestion over every question in the
// section and merges the results into the session's field errors. The
// merge is additive: errors for questions outside this section are left
// untouched, while fixed questions inside it are cleared. Returns true
// iff the whole section is valid.
func (s *Session) ValidateSection(index int) bool {
	if index < 0 || index >= len(s.ws.Sections) {
		return false
	}

	ok := true
	for i := range s.ws.Sections[index].Questions {
		q := &s.ws.Sections[index].Questions[i]
		if msg := ValidateQuestion(q, s.answers); msg != "" {
			s.fieldErrors[q.ID] = msg
			ok = false
		} else {
			delete(s.fieldErrors, q.ID)
		}
	}
	return ok
}

var (
	patternMu    sync.Mutex
	patternCache = map[string]*regexp.Regexp{}
)

func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternMu.Lock()
	defer patternMu.Unlock()
	if re, ok := patternCache[pattern]; ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache[pattern] = re
	return re, nil
}
