package worksheet

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned when a worksheet id is not in the catalog.
var ErrNotFound = errors.New("worksheet not found")

// catalog is the package-level registry, seeded by init() in seed.go.
var catalog = struct {
	mu      sync.RWMutex
	byID    map[string]*Worksheet
	ordered []*Worksheet
}{
	byID: make(map[string]*Worksheet),
}

// Register validates a worksheet and adds it to the catalog.
// Registered worksheets must be treated as immutable.
func Register(ws *Worksheet) error {
	if err := Validate(ws); err != nil {
		return err
	}

	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if _, exists := catalog.byID[ws.ID]; exists {
		return fmt.Errorf("worksheet %q already registered", ws.ID)
	}
	catalog.byID[ws.ID] = ws
	catalog.ordered = append(catalog.ordered, ws)
	return nil
}

// MustRegister registers a worksheet and panics on failure. Used by the
// seed data, where a bad definition is a build error.
func MustRegister(ws *Worksheet) {
	if err := Register(ws); err != nil {
		panic(err)
	}
}

// Get returns the worksheet with the given id.
func Get(id string) (*Worksheet, error) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	ws, ok := catalog.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return ws, nil
}

// All returns every registered worksheet in registration order.
func All() []*Worksheet {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	out := make([]*Worksheet, len(catalog.ordered))
	copy(out, catalog.ordered)
	return out
}
