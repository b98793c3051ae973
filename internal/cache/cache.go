package cache

import (
	"fmt"

	"github.com/maypok86/otter"

	"github.com/mvp-joe/pyoutline/internal/outline"
)

// DefaultMaxEntries bounds the cache when no size is configured.
const DefaultMaxEntries = 1024

// Outliner memoizes outlines by source content. Failed outlines are not
// cached. Safe for concurrent use.
type Outliner struct {
	next    outline.Outliner
	entries otter.Cache[string, string]
}

// NewOutliner wraps next with a cache holding at most maxEntries outlines.
func NewOutliner(next outline.Outliner, maxEntries int) (*Outliner, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	entries, err := otter.MustBuilder[string, string](maxEntries).
		CollectStats().
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build outline cache: %w", err)
	}

	return &Outliner{next: next, entries: entries}, nil
}

// Outline returns the cached outline for source, computing it on a miss.
func (c *Outliner) Outline(source []byte) (string, error) {
	key := ContentKey(source)
	if out, ok := c.entries.Get(key); ok {
		return out, nil
	}

	out, err := c.next.Outline(source)
	if err != nil {
		return "", err
	}
	c.entries.Set(key, out)
	return out, nil
}

// Stats reports cache hits and misses since creation.
func (c *Outliner) Stats() (hits, misses int64) {
	s := c.entries.Stats()
	return s.Hits(), s.Misses()
}

// Close releases the cache.
func (c *Outliner) Close() {
	c.entries.Close()
}
