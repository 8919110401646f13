// Package recent defines the recently used documents list.
package recent

import (
	"context"
	"time"
)

// DefaultLimit caps the number of remembered documents.
const DefaultLimit = 20

// Entry is a document that was opened or saved.
type Entry struct {
	Path     string    `json:"path"`
	UsedAt   time.Time `json:"used_at"`
	Launches int       `json:"launches"`
}

// Store persists the recent documents list, most recent first.
type Store interface {
	// List returns all entries, most recent first.
	List(ctx context.Context) ([]Entry, error)
	// Touch moves path to the front of the list, adding it when missing, and
	// prunes the list to limit entries.
	Touch(ctx context.Context, path string, at time.Time, limit int) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
}

// Paths returns the paths of entries in order.
func Paths(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Path)
	}
	return out
}
