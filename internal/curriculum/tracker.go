package curriculum

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/foundry/internal/draft"
)

// progressKey is where task completion state lives in the draft store.
const progressKey = "curriculum-progress"

// Tracker records which daily tasks are done and derives day and phase
// progress. State persists through a draft.Store so it survives
// restarts alongside worksheet drafts.
type Tracker struct {
	store draft.Store
	done  map[string]bool
}

// NewTracker loads completion state from the store. A missing or
// corrupt record starts the tracker empty.
func NewTracker(ctx context.Context, store draft.Store) (*Tracker, error) {
	t := &Tracker{
		store: store,
		done:  make(map[string]bool),
	}
	if store == nil {
		return t, nil
	}

	payload, ok, err := store.Get(ctx, progressKey)
	if err != nil {
		return nil, fmt.Errorf("load curriculum progress: %w", err)
	}
	if ok {
		if err := json.Unmarshal([]byte(payload), &t.done); err != nil {
			// Corrupt state is discarded, not fatal.
			t.done = make(map[string]bool)
		}
	}
	return t, nil
}

// Done reports whether a task is completed.
func (t *Tracker) Done(taskID string) bool {
	return t.done[taskID]
}

// SetDone marks a task done or not done and persists the change.
func (t *Tracker) SetDone(ctx context.Context, taskID string, done bool) error {
	if done {
		t.done[taskID] = true
	} else {
		delete(t.done, taskID)
	}

	if t.store == nil {
		return nil
	}
	payload, err := json.Marshal(t.done)
	if err != nil {
		return fmt.Errorf("encode curriculum progress: %w", err)
	}
	if err := t.store.Set(ctx, progressKey, string(payload)); err != nil {
		return fmt.Errorf("save curriculum progress: %w", err)
	}
	return nil
}

// Reset clears all completion state.
func (t *Tracker) Reset(ctx context.Context) error {
	t.done = make(map[string]bool)
	if t.store == nil {
		return nil
	}
	if err := t.store.Remove(ctx, progressKey); err != nil {
		return fmt.Errorf("reset curriculum progress: %w", err)
	}
	return nil
}

// DayProgress returns percent of the day's tasks completed. A day with
// no tasks counts as complete.
func (t *Tracker) DayProgress(d *Day) int {
	return t.percent(d.Tasks)
}

// PhaseProgress returns percent of all tasks completed across the
// phase's days.
func (t *Tracker) PhaseProgress(phase Phase) int {
	var tasks []Task
	for _, d := range Program() {
		if d.Phase == phase {
			tasks = append(tasks, d.Tasks...)
		}
	}
	return t.percent(tasks)
}

// OverallProgress returns percent of all program tasks completed.
func (t *Tracker) OverallProgress() int {
	var tasks []Task
	for _, d := range Program() {
		tasks = append(tasks, d.Tasks...)
	}
	return t.percent(tasks)
}

func (t *Tracker) percent(tasks []Task) int {
	if len(tasks) == 0 {
		return 100
	}
	done := 0
	for _, task := range tasks {
		if t.done[task.ID] {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// CurrentDay computes which program day it is given the start date,
// clamped to [1, 30]. Day 1 is the start date itself.
func CurrentDay(start, now time.Time) int {
	day := int(now.Sub(start).Hours()/24) + 1
	if day < 1 {
		day = 1
	}
	if day > len(program) {
		day = len(program)
	}
	return day
}
