package components

import (
	"reflect"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestRanking_UntouchedReturnsNil(t *testing.T) {
	r := NewRanking([]string{"a", "b", "c"}, nil)
	if r.Value() != nil {
		t.Errorf("Value = %v, want nil before any interaction", r.Value())
	}
}

func TestRanking_SavedOrderRestored(t *testing.T) {
	r := NewRanking([]string{"a", "b", "c"}, []string{"c", "a", "b"})
	want := []string{"c", "a", "b"}
	if !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("Value = %v, want %v", r.Value(), want)
	}
}

func TestRanking_SavedOrderAppendsMissingOptions(t *testing.T) {
	r := NewRanking([]string{"a", "b", "c"}, []string{"b"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("Value = %v, want %v", r.Value(), want)
	}
}

func TestRanking_MoveDown(t *testing.T) {
	r := NewRanking([]string{"a", "b", "c"}, nil)
	r, _ = r.Update(keyPress('J'))
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("Value = %v, want %v", r.Value(), want)
	}
	if r.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 (follows the moved item)", r.Cursor)
	}
}

func TestRanking_MoveUpAtTopIsNoop(t *testing.T) {
	r := NewRanking([]string{"a", "b"}, nil)
	r, _ = r.Update(keyPress('K'))
	if r.Value() != nil {
		t.Errorf("Value = %v, want nil (no-op move must not count as ranked)", r.Value())
	}
}

func TestRanking_EnterConfirmsDefaultOrder(t *testing.T) {
	r := NewRanking([]string{"a", "b"}, nil)
	r, _ = r.Update(specialKey(tea.KeyEnter))
	want := []string{"a", "b"}
	if !reflect.DeepEqual(r.Value(), want) {
		t.Errorf("Value = %v, want %v", r.Value(), want)
	}
}
