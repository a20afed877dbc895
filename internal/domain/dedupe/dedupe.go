// Package dedupe tracks respondent keys that were already classified.
package dedupe

import (
	"context"
)

// Deduper records seen keys so each respondent is classified once.
// Implementations are not safe for concurrent use.
type Deduper interface {
	// SeenAndRecord checks if id was seen and records it if not.
	// Returns true if id was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, id string) bool

	Size() int64
}

// inMemoryDeduper implements Deduper with an unbounded map. A survey is
// small enough that nothing is ever evicted.
type inMemoryDeduper struct {
	seen      map[string]struct{}
	normalize func(string) string
	capacity  int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		normalize: func(s string) string { return s },
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]struct{}, d.capacity)
	return d
}

// SeenAndRecord checks if id was seen and records it if not.
func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, id string) bool {
	id = d.normalize(id)
	if _, exists := d.seen[id]; exists {
		return true
	}
	d.seen[id] = struct{}{}
	return false
}

// Size returns the number of recorded IDs.
func (d *inMemoryDeduper) Size() int64 {
	return int64(len(d.seen))
}
