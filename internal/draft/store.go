// Package draft is the persistence channel for in-progress worksheet
// answers. Drafts are keyed strings; the payload is the JSON-serialized
// answer-set.
package draft

import (
	"context"
	"strings"
)

// Store is a key-value channel for draft payloads. Implementations must
// be safe for use from the autosave timer goroutine.
type Store interface {
	// Get returns the payload for key, and whether a draft exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes the payload for key, replacing any existing draft.
	Set(ctx context.Context, key, payload string) error

	// Remove deletes the draft for key. Removing a missing key is not
	// an error.
	Remove(ctx context.Context, key string) error
}

// Slug converts a worksheet title to its stable storage slug: lowercase
// with runs of whitespace collapsed to single hyphens.
func Slug(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), "-")
}

// Key returns the draft key for a worksheet title.
func Key(title string) string {
	return "worksheet-" + Slug(title)
}
