package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestMatrix_StartsEmpty(t *testing.T) {
	m := NewMatrix([]string{"r1", "r2"}, []string{"c1", "c2"}, nil)
	if got := m.Value(); len(got) != 0 {
		t.Errorf("Value = %v, want empty", got)
	}
}

func TestMatrix_RestoresSavedPicks(t *testing.T) {
	m := NewMatrix([]string{"r1", "r2"}, []string{"c1", "c2"},
		map[string]string{"r1": "c2", "gone": "c1", "r2": "not-a-column"})
	got := m.Value()
	if len(got) != 1 || got["r1"] != "c2" {
		t.Errorf("Value = %v, want only r1=c2", got)
	}
}

func TestMatrix_RightPicksFirstColumn(t *testing.T) {
	m := NewMatrix([]string{"r1"}, []string{"c1", "c2", "c3"}, nil)
	m, _ = m.Update(specialKey(tea.KeyRight))
	if got := m.Value(); got["r1"] != "c1" {
		t.Errorf("picked %q, want c1", got["r1"])
	}
	m, _ = m.Update(specialKey(tea.KeyRight))
	if got := m.Value(); got["r1"] != "c2" {
		t.Errorf("picked %q, want c2", got["r1"])
	}
}

func TestMatrix_CycleClampsAtEnds(t *testing.T) {
	m := NewMatrix([]string{"r1"}, []string{"c1", "c2"},
		map[string]string{"r1": "c2"})
	m, _ = m.Update(specialKey(tea.KeyRight))
	if got := m.Value(); got["r1"] != "c2" {
		t.Errorf("picked %q after right at last column, want c2", got["r1"])
	}
	m, _ = m.Update(specialKey(tea.KeyLeft))
	m, _ = m.Update(specialKey(tea.KeyLeft))
	if got := m.Value(); got["r1"] != "c1" {
		t.Errorf("picked %q after lefts, want c1", got["r1"])
	}
}

func TestMatrix_RowsAreIndependent(t *testing.T) {
	m := NewMatrix([]string{"r1", "r2"}, []string{"c1", "c2"}, nil)
	m, _ = m.Update(specialKey(tea.KeyRight))
	m, _ = m.Update(keyPress('j'))
	m, _ = m.Update(specialKey(tea.KeyRight))
	m, _ = m.Update(specialKey(tea.KeyRight))

	got := m.Value()
	if got["r1"] != "c1" {
		t.Errorf("r1 = %q, want c1", got["r1"])
	}
	if got["r2"] != "c2" {
		t.Errorf("r2 = %q, want c2", got["r2"])
	}
}
