package draft

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a scheduled draft is written.
const DefaultDelay = 2 * time.Second

// Autosaver coalesces rapid draft updates into a single debounced write.
// Each Schedule call supersedes any pending one (last-write-wins), so a
// burst of edits within the quiet period produces exactly one write with
// the final payload.
type Autosaver struct {
	store Store
	key   string
	delay time.Duration

	// onError receives write failures. Failures are reported and
	// dropped; they never block further scheduling.
	onError func(error)

	now func() time.Time

	mu         sync.Mutex
	timer      *time.Timer
	pending    string
	hasPending bool
	lastSaved  time.Time
	closed     bool
}

// NewAutosaver creates an autosaver writing to store under key.
// delay <= 0 selects DefaultDelay. now stamps successful writes; nil
// selects time.Now. onError may be nil.
func NewAutosaver(store Store, key string, delay time.Duration, now func() time.Time, onError func(error)) *Autosaver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if now == nil {
		now = time.Now
	}
	return &Autosaver{
		store:   store,
		key:     key,
		delay:   delay,
		now:     now,
		onError: onError,
	}
}

// Schedule queues payload to be written after the quiet period. A newer
// Schedule call replaces the pending payload and restarts the timer.
func (a *Autosaver) Schedule(payload string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	a.pending = payload
	a.hasPending = true

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.delay, a.fire)
}

// fire runs on the timer goroutine.
func (a *Autosaver) fire() {
	a.mu.Lock()
	if a.closed || !a.hasPending {
		a.mu.Unlock()
		return
	}
	payload := a.pending
	a.hasPending = false
	a.mu.Unlock()

	a.write(payload)
}

// Flush writes any pending payload immediately, cancelling the timer.
func (a *Autosaver) Flush() {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	if a.closed || !a.hasPending {
		a.mu.Unlock()
		return
	}
	payload := a.pending
	a.hasPending = false
	a.mu.Unlock()

	a.write(payload)
}

// Close flushes any pending payload and stops the autosaver. Further
// Schedule calls are ignored.
func (a *Autosaver) Close() {
	a.Flush()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.closed = true
}

// Discard drops any pending payload and stops the autosaver without
// writing. Used when the draft is being cleared on completion.
func (a *Autosaver) Discard() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.hasPending = false
	a.closed = true
}

// LastSaved returns the time of the most recent successful write, or the
// zero time if nothing has been written.
func (a *Autosaver) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSaved
}

func (a *Autosaver) write(payload string) {
	err := a.store.Set(context.Background(), a.key, payload)
	if err != nil {
		if a.onError != nil {
			a.onError(err)
		}
		return
	}

	a.mu.Lock()
	a.lastSaved = a.now()
	a.mu.Unlock()
}
