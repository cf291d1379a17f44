package pagination

import (
	lru "github.com/hashicorp/golang-lru"
)

// DefaultCacheSize bounds the number of compiled pattern sets kept around.
const DefaultCacheSize = 32

// PatternCache memoizes Compile keyed by template and legacy base.
// It is safe for concurrent use.
type PatternCache struct {
	entries *lru.Cache
}

type cacheKey struct {
	template string
	base     string
}

// NewPatternCache returns a cache holding at most size entries.
// A size below 1 uses DefaultCacheSize.
func NewPatternCache(size int) *PatternCache {
	if size < 1 {
		size = DefaultCacheSize
	}
	entries, err := lru.New(size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &PatternCache{entries: entries}
}

// Get returns the compiled patterns for t and legacyBase, compiling them
// on a miss. A zero template yields nil.
func (c *PatternCache) Get(t Template, legacyBase string) *Patterns {
	if t.IsZero() {
		return nil
	}

	key := cacheKey{template: t.String(), base: normalizeBase(legacyBase)}
	if v, ok := c.entries.Get(key); ok {
		return v.(*Patterns)
	}

	p := Compile(t, key.base)
	c.entries.Add(key, p)
	return p
}

// Len returns the number of cached entries.
func (c *PatternCache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *PatternCache) Purge() {
	c.entries.Purge()
}
