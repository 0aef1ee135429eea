package engine

import "github.com/abhisek/foundry/internal/worksheet"

// Control names the input widget a question renders as.
type Control string

const (
	ControlInput      Control = "input"
	ControlTextArea   Control = "textarea"
	ControlRadio      Control = "radio"
	ControlChecklist  Control = "checklist"
	ControlSlider     Control = "slider"
	ControlRanking    Control = "ranking"
	ControlMatrix     Control = "matrix"
	ControlFilePicker Control = "filepicker"
)

// QuestionView is the render model for a single question: which
// control to show, the current value with a per-kind empty default, and
// any validation message to display.
type QuestionView struct {
	Question *worksheet.Question
	Control  Control
	Answer   worksheet.Answer
	Error    string
}

// BuildQuestionView derives the view for one question. It is pure:
// identical inputs always yield identical output, and nothing is
// mutated.
func BuildQuestionView(q *worksheet.Question, answers map[string]worksheet.Answer, fieldErrors map[string]string) QuestionView {
	v := QuestionView{
		Question: q,
		Control:  controlFor(q.Kind),
		Error:    fieldErrors[q.ID],
	}
	if a, ok := answers[q.ID]; ok {
		v.Answer = a
	} else {
		v.Answer = defaultAnswer(q)
	}
	return v
}

// QuestionView derives the view for a question in this session.
func (s *Session) QuestionView(id string) (QuestionView, error) {
	q := s.ws.Question(id)
	if q == nil {
		return QuestionView{}, ErrUnknownQuestion
	}
	return BuildQuestionView(q, s.answers, s.fieldErrors), nil
}

func controlFor(k worksheet.Kind) Control {
	switch k {
	case worksheet.KindText:
		return ControlInput
	case worksheet.KindLongText:
		return ControlTextArea
	case worksheet.KindSingleChoice:
		return ControlRadio
	case worksheet.KindChecklist:
		return ControlChecklist
	case worksheet.KindScale:
		return ControlSlider
	case worksheet.KindRanking:
		return ControlRanking
	case worksheet.KindMatrix:
		return ControlMatrix
	case worksheet.KindFileUpload:
		return ControlFilePicker
	}
	return ControlInput
}

// defaultAnswer is the empty value shown before the user answers: ""
// for text-shaped kinds, an empty list for list-shaped kinds, and the
// scale minimum for sliders.
func defaultAnswer(q *worksheet.Question) worksheet.Answer {
	switch q.Kind {
	case worksheet.KindText:
		return worksheet.Text("")
	case worksheet.KindLongText:
		return worksheet.LongText("")
	case worksheet.KindSingleChoice:
		return worksheet.Choice("")
	case worksheet.KindChecklist:
		return worksheet.Checklist{}
	case worksheet.KindRanking:
		return worksheet.Ranking{}
	case worksheet.KindScale:
		return worksheet.Scale(q.Scale.Min)
	case worksheet.KindMatrix:
		return worksheet.Matrix{}
	case worksheet.KindFileUpload:
		return worksheet.FileRef("")
	}
	return worksheet.Text("")
}
