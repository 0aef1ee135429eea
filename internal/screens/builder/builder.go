package builder

import (
	"context"
	"errors"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/coach"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/engine"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
	"github.com/abhisek/foundry/internal/screen"
	"github.com/abhisek/foundry/internal/screens/summary"
	"github.com/abhisek/foundry/internal/ui/layout"
	"github.com/abhisek/foundry/internal/worksheet"
)

// saveErrBox carries autosave failures from the debounce timer
// goroutine to the UI loop, which reads it on the status tick.
type saveErrBox struct {
	mu  sync.Mutex
	msg string
	at  time.Time
}

func (b *saveErrBox) set(err error) {
	b.mu.Lock()
	b.msg = "autosave failed: " + err.Error()
	b.at = time.Now()
	b.mu.Unlock()
}

// get returns the standing failure. A successful save at or after the
// failure clears it, so the warning does not outlive the problem.
func (b *saveErrBox) get(lastSaved time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.msg != "" && !lastSaved.IsZero() && !lastSaved.Before(b.at) {
		b.msg = ""
	}
	return b.msg
}

// BuilderScreen walks a founder through one worksheet, question by
// question, with validation and autosaved drafts.
type BuilderScreen struct {
	session *engine.Session
	sink    export.Sink
	coach   *coach.Service

	qIndex int
	editor editor
	width  int

	notice  string
	saveErr *saveErrBox
}

var _ screen.Screen = (*BuilderScreen)(nil)
var _ screen.KeyHintProvider = (*BuilderScreen)(nil)

// New opens a worksheet session, restoring any saved draft.
func New(ws *worksheet.Worksheet, store draft.Store, autosaveDelay time.Duration, sink export.Sink, coachSvc *coach.Service) *BuilderScreen {
	box := &saveErrBox{}
	sess := engine.New(ws, engine.Options{
		Store:         store,
		AutosaveDelay: autosaveDelay,
		OnSaveError:   box.set,
	})

	b := &BuilderScreen{
		session: sess,
		sink:    sink,
		coach:   coachSvc,
		saveErr: box,
		width:   layout.MinWidth,
	}
	b.loadEditor()
	return b
}

func (b *BuilderScreen) Init() tea.Cmd {
	return saveTick()
}

func (b *BuilderScreen) Title() string {
	return b.session.Worksheet().Title
}

func (b *BuilderScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next question"},
		{Key: "Ctrl+N/P", Description: "Section"},
	}
	if b.session.IsLast() {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Finish"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Save & exit"})
	return hints
}

func (b *BuilderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case saveTickMsg:
		return b, saveTick()

	case tea.WindowSizeMsg:
		b.width = msg.Width
		return b, nil

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	var cmd tea.Cmd
	b.editor, cmd = b.editor.update(msg)
	return b, cmd
}

func (b *BuilderScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		b.commit()
		b.moveQuestion(1)
		return b, nil

	case "shift+tab":
		b.commit()
		b.moveQuestion(-1)
		return b, nil

	case "ctrl+n":
		b.commit()
		if b.session.IsLast() {
			return b, nil
		}
		if b.session.Next() {
			b.qIndex = 0
			b.notice = ""
			b.loadEditor()
		} else {
			b.jumpToFirstError()
			b.notice = "Fix the highlighted answers to continue"
		}
		return b, nil

	case "ctrl+p":
		b.commit()
		b.session.Previous()
		b.qIndex = 0
		b.notice = ""
		b.loadEditor()
		return b, nil

	case "ctrl+d":
		return b.complete()

	case "esc":
		b.commit()
		b.session.Save()
		b.session.Close()
		return b, func() tea.Msg { return router.PopScreenMsg{} }

	case "enter":
		// Single-line input: enter advances, matching form flow.
		// All other controls use enter themselves.
		if b.editor.control == engine.ControlInput || b.editor.control == engine.ControlFilePicker {
			b.commit()
			b.moveQuestion(1)
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.editor, cmd = b.editor.update(msg)
	return b, cmd
}

// complete validates everything and hands off to the summary screen.
func (b *BuilderScreen) complete() (screen.Screen, tea.Cmd) {
	b.commit()

	if !b.session.IsLast() {
		b.notice = "Go to the last section to finish"
		return b, nil
	}

	err := b.session.Complete(context.Background())
	if err != nil {
		var vf *engine.ValidationFailure
		if errors.As(err, &vf) {
			_ = b.session.JumpTo(vf.FirstSection())
			b.jumpToFirstError()
			b.notice = "Some required answers are missing or invalid"
			return b, nil
		}
		b.notice = err.Error()
		return b, nil
	}

	sess := b.session
	sink := b.sink
	coachSvc := b.coach
	return b, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sess, sink, coachSvc)}
	}
}

// commit writes the editor value into the session. Empty values clear
// the stored answer.
func (b *BuilderScreen) commit() {
	q := b.question()
	if q == nil {
		return
	}
	_ = b.session.UpdateAnswer(q.ID, b.editor.answer(q))
}

// moveQuestion shifts the cursor within the current section, clamped.
func (b *BuilderScreen) moveQuestion(delta int) {
	sec := b.session.Section()
	if sec == nil {
		return
	}
	next := b.qIndex + delta
	if next < 0 || next >= len(sec.Questions) {
		return
	}
	b.qIndex = next
	b.loadEditor()
}

// jumpToFirstError places the cursor on the first invalid question in
// the current section.
func (b *BuilderScreen) jumpToFirstError() {
	sec := b.session.Section()
	if sec == nil {
		return
	}
	for i := range sec.Questions {
		if _, bad := b.session.FieldError(sec.Questions[i].ID); bad {
			b.qIndex = i
			break
		}
	}
	b.loadEditor()
}

// loadEditor rebuilds the input widget for the question under the
// cursor.
func (b *BuilderScreen) loadEditor() {
	q := b.question()
	if q == nil {
		return
	}
	qv, err := b.session.QuestionView(q.ID)
	if err != nil {
		return
	}
	_, answered := b.session.Answer(q.ID)
	b.editor = newEditor(qv, answered, b.width)
}

// question returns the question under the cursor.
func (b *BuilderScreen) question() *worksheet.Question {
	sec := b.session.Section()
	if sec == nil || b.qIndex < 0 || b.qIndex >= len(sec.Questions) {
		return nil
	}
	return &sec.Questions[b.qIndex]
}

func saveTick() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return saveTickMsg(t)
	})
}
