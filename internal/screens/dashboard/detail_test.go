package dashboard

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/foundry/internal/curriculum"
	"github.com/abhisek/foundry/internal/draft"
	"github.com/abhisek/foundry/internal/export"
	"github.com/abhisek/foundry/internal/router"
)

func testDetail(t *testing.T, dayNumber int) (*DayDetailScreen, *curriculum.Tracker) {
	t.Helper()
	store := draft.NewMemory()
	tracker, err := curriculum.NewTracker(context.Background(), store)
	if err != nil {
		t.Fatal(err)
	}
	day := curriculum.DayByNumber(dayNumber)
	if day == nil {
		t.Fatalf("no day %d in the program", dayNumber)
	}
	d := newDayDetail(day, tracker, store, time.Hour, export.FileSink{Dir: "."}, nil)
	return d, tracker
}

func TestDayDetail_Title(t *testing.T) {
	d, _ := testDetail(t, 1)
	if d.Title() != "Day 1" {
		t.Errorf("Title = %q, want %q", d.Title(), "Day 1")
	}
}

func TestDayDetail_ToggleTask(t *testing.T) {
	d, tracker := testDetail(t, 1)
	task := d.day.Tasks[0]

	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !tracker.Done(task.ID) {
		t.Error("task not marked done after toggle")
	}

	d.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if tracker.Done(task.ID) {
		t.Error("task still done after second toggle")
	}
}

func TestDayDetail_CursorClamps(t *testing.T) {
	d, _ := testDetail(t, 1)

	d.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if d.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", d.cursor)
	}

	for range d.day.Tasks {
		d.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if d.cursor != len(d.day.Tasks)-1 {
		t.Errorf("cursor = %d, want %d", d.cursor, len(d.day.Tasks)-1)
	}
}

func TestDayDetail_WorkshopKeyPushesBuilder(t *testing.T) {
	var withSheet *curriculum.Day
	program := curriculum.Program()
	for i := range program {
		if program[i].WorksheetID != "" {
			withSheet = &program[i]
			break
		}
	}
	if withSheet == nil {
		t.Skip("no day links a worksheet")
	}

	d, _ := testDetail(t, withSheet.Number)
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'w', Text: "w"})
	if cmd == nil {
		t.Fatal("expected a command on W")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg on W")
	}
}

func TestDayDetail_WorkshopKeyNoopWithoutWorksheet(t *testing.T) {
	var plain *curriculum.Day
	program := curriculum.Program()
	for i := range program {
		if program[i].WorksheetID == "" {
			plain = &program[i]
			break
		}
	}
	if plain == nil {
		t.Skip("every day links a worksheet")
	}

	d, _ := testDetail(t, plain.Number)
	_, cmd := d.Update(tea.KeyPressMsg{Code: 'w', Text: "w"})
	if cmd != nil {
		t.Error("expected no command without a linked worksheet")
	}
}

func TestDayDetail_EscPops(t *testing.T) {
	d, _ := testDetail(t, 1)
	_, cmd := d.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestDayDetail_View(t *testing.T) {
	d, _ := testDetail(t, 1)
	if d.View(100, 40) == "" {
		t.Error("expected non-empty view")
	}
}
