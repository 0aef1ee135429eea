package components

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestChecklist_KeepsCheckOrder(t *testing.T) {
	c := NewChecklist([]string{"a", "b", "c"}, nil)

	// Check c first, then a.
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(keyPress('j'))
	c, _ = c.Update(specialKey(tea.KeyEnter))
	c, _ = c.Update(keyPress('k'))
	c, _ = c.Update(keyPress('k'))
	c, _ = c.Update(specialKey(tea.KeyEnter))

	want := []string{"c", "a"}
	if !reflect.DeepEqual(c.Value(), want) {
		t.Errorf("Value = %v, want %v", c.Value(), want)
	}
}

func TestChecklist_ToggleRemoves(t *testing.T) {
	c := NewChecklist([]string{"a", "b"}, []string{"a"})
	c, _ = c.Update(specialKey(tea.KeyEnter))
	if got := c.Value(); len(got) != 0 {
		t.Errorf("Value = %v, want empty after toggle off", got)
	}
}

func TestChecklist_DropsUnknownSavedValues(t *testing.T) {
	c := NewChecklist([]string{"a", "b"}, []string{"a", "gone"})
	want := []string{"a"}
	if !reflect.DeepEqual(c.Value(), want) {
		t.Errorf("Value = %v, want %v", c.Value(), want)
	}
}

func TestChecklist_ValueIsACopy(t *testing.T) {
	c := NewChecklist([]string{"a", "b"}, []string{"a"})
	v := c.Value()
	v[0] = "mutated"
	if got := c.Value(); got[0] != "a" {
		t.Errorf("internal state mutated through Value: %v", got)
	}
}
