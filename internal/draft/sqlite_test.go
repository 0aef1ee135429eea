package draft

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLite_RoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "drafts.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	_, ok, err := store.Get(ctx, "worksheet-missing")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if ok {
		t.Fatal("Get(missing) reported a draft")
	}

	if err := store.Set(ctx, "worksheet-x", `{"q1":{"kind":"text","value":"hi"}}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(ctx, "worksheet-x", `{"q1":{"kind":"text","value":"hello"}}`); err != nil {
		t.Fatalf("Set (overwrite): %v", err)
	}

	payload, ok, err := store.Get(ctx, "worksheet-x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("draft missing after Set")
	}
	if payload != `{"q1":{"kind":"text","value":"hello"}}` {
		t.Errorf("payload = %q, want overwritten value", payload)
	}

	if err := store.Remove(ctx, "worksheet-x"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	_, ok, _ = store.Get(ctx, "worksheet-x")
	if ok {
		t.Error("draft still present after Remove")
	}

	// Removing a missing key is not an error.
	if err := store.Remove(ctx, "worksheet-x"); err != nil {
		t.Errorf("Remove(missing): %v", err)
	}
}
