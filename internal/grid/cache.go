package grid

import (
	"sync"

	"github.com/javiermolinar/twine/internal/content"
)

// Source is a revisioned block collection.
type Source interface {
	Revision() uint64
	Snapshot() (uint64, []content.Block)
}

// Cache memoizes BucketBlocksBySlot until the source revision changes.
type Cache struct {
	src Source

	mu       sync.Mutex
	valid    bool
	revision uint64
	buckets  Buckets
}

// NewCache returns a cache over src.
func NewCache(src Source) *Cache {
	return &Cache{src: src}
}

// Buckets returns the bucketed collection, rebuilding it only after a mutation.
// Callers must not modify the result.
func (c *Cache) Buckets() Buckets {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid && c.src.Revision() == c.revision {
		return c.buckets
	}
	rev, blocks := c.src.Snapshot()
	c.buckets = BucketBlocksBySlot(blocks)
	c.revision = rev
	c.valid = true
	return c.buckets
}

// Invalidate forces the next call to rebuild.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.mu.Unlock()
}
