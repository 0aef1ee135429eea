package builder

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/ui/components"
	"github.com/abhisek/foundry/internal/worksheet"
)

// editor holds the active input widget for the question under the
// cursor. Exactly one field is live, selected by control.
type editor struct {
	control engine.Control

	input     components.TextInput
	area      components.TextArea
	choice    components.Choice
	checklist components.Checklist
	scale     components.Scale
	ranking   components.Ranking
	matrix    components.Matrix
}

// newEditor builds the widget for a question, seeded from the stored
// answer and showing any standing validation message. answered reports
// whether the question has a stored answer, which the slider needs
// because its zero value is a real position.
func newEditor(qv engine.QuestionView, answered bool, width int) editor {
	q := qv.Question
	e := editor{control: qv.Control}

	switch qv.Control {
	case engine.ControlInput:
		value, _ := worksheet.TextValue(qv.Answer)
		e.input = components.NewTextInput(q.Placeholder, value, 0)
		e.input.SetError(qv.Error)

	case engine.ControlTextArea:
		value, _ := worksheet.TextValue(qv.Answer)
		w := width - 8
		if w > 76 {
			w = 76
		}
		e.area = components.NewTextArea(q.Placeholder, value, w, 6)
		e.area.SetError(qv.Error)

	case engine.ControlRadio:
		value := ""
		if c, ok := qv.Answer.(worksheet.Choice); ok {
			value = string(c)
		}
		e.choice = components.NewChoice(q.Choices, value)

	case engine.ControlChecklist:
		var checked []string
		if c, ok := qv.Answer.(worksheet.Checklist); ok {
			checked = c
		}
		e.checklist = components.NewChecklist(q.Choices, checked)

	case engine.ControlSlider:
		value := q.Scale.Min
		if v, ok := qv.Answer.(worksheet.Scale); ok {
			value = int(v)
		}
		e.scale = components.NewScale(q.Scale.Min, q.Scale.Max, q.Scale.Labels, value, answered)

	case engine.ControlRanking:
		var saved []string
		if r, ok := qv.Answer.(worksheet.Ranking); ok {
			saved = r
		}
		e.ranking = components.NewRanking(q.Choices, saved)

	case engine.ControlMatrix:
		var saved map[string]string
		if m, ok := qv.Answer.(worksheet.Matrix); ok {
			saved = m
		}
		e.matrix = components.NewMatrix(q.Rows, q.Columns, saved)

	case engine.ControlFilePicker:
		value := ""
		if f, ok := qv.Answer.(worksheet.FileRef); ok {
			value = string(f)
		}
		e.input = components.NewTextInput("Path to file...", value, 0)
		e.input.SetError(qv.Error)
	}

	return e
}

// update forwards a message to the live widget.
func (e editor) update(msg tea.Msg) (editor, tea.Cmd) {
	var cmd tea.Cmd
	switch e.control {
	case engine.ControlInput, engine.ControlFilePicker:
		e.input, cmd = e.input.Update(msg)
	case engine.ControlTextArea:
		e.area, cmd = e.area.Update(msg)
	case engine.ControlRadio:
		e.choice, cmd = e.choice.Update(msg)
	case engine.ControlChecklist:
		e.checklist, cmd = e.checklist.Update(msg)
	case engine.ControlSlider:
		e.scale, cmd = e.scale.Update(msg)
	case engine.ControlRanking:
		e.ranking, cmd = e.ranking.Update(msg)
	case engine.ControlMatrix:
		e.matrix, cmd = e.matrix.Update(msg)
	}
	return e, cmd
}

// view renders the live widget.
func (e editor) view() string {
	switch e.control {
	case engine.ControlInput, engine.ControlFilePicker:
		return e.input.View()
	case engine.ControlTextArea:
		return e.area.View()
	case engine.ControlRadio:
		return e.choice.View()
	case engine.ControlChecklist:
		return e.checklist.View()
	case engine.ControlSlider:
		return e.scale.View()
	case engine.ControlRanking:
		return e.ranking.View()
	case engine.ControlMatrix:
		return e.matrix.View()
	}
	return ""
}

// answer converts the widget state into an answer value. A nil return
// means "no answer", which clears the stored entry.
func (e editor) answer(q *worksheet.Question) worksheet.Answer {
	switch e.control {
	case engine.ControlInput:
		if v := e.input.Value(); v != "" {
			return worksheet.Text(v)
		}
	case engine.ControlTextArea:
		if v := e.area.Value(); v != "" {
			return worksheet.LongText(v)
		}
	case engine.ControlRadio:
		if v := e.choice.Value(); v != "" {
			return worksheet.Choice(v)
		}
	case engine.ControlChecklist:
		if v := e.checklist.Value(); len(v) > 0 {
			return worksheet.Checklist(v)
		}
	case engine.ControlSlider:
		if e.scale.Answered() {
			return worksheet.Scale(e.scale.Value)
		}
	case engine.ControlRanking:
		if v := e.ranking.Value(); len(v) > 0 {
			return worksheet.Ranking(v)
		}
	case engine.ControlMatrix:
		if v := e.matrix.Value(); len(v) > 0 {
			return worksheet.Matrix(v)
		}
	case engine.ControlFilePicker:
		if v := e.input.Value(); v != "" {
			return worksheet.FileRef(v)
		}
	}
	return nil
}

// setError updates the validation message shown by text widgets.
func (e *editor) setError(msg string) {
	switch e.control {
	case engine.ControlInput, engine.ControlFilePicker:
		e.input.SetError(msg)
	case engine.ControlTextArea:
		e.area.SetError(msg)
	}
}
