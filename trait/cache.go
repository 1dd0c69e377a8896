package trait

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Cache canonicalizes trait sets: every set handed out for a given digest is
// the same instance, so nodes across one optimization share trait storage
// instead of each holding its own copy of, say, a long collation.
// A Cache is safe for concurrent use.
type Cache struct {
	sets *xsync.MapOf[string, TraitSet]
}

func NewCache() *Cache {
	return &Cache{
		sets: xsync.NewMapOf[string, TraitSet](),
	}
}

// Canonize returns the cached set equal to ts, caching ts if it is the first.
func (c *Cache) Canonize(ts TraitSet) TraitSet {
	actual, _ := c.sets.LoadOrStore(ts.String(), ts)
	return actual
}

// Of builds and canonizes a set from traits, as NewTraitSet does.
func (c *Cache) Of(traits ...Trait) TraitSet {
	return c.Canonize(NewTraitSet(traits...))
}

// Len returns the number of distinct trait sets seen.
func (c *Cache) Len() int {
	return c.sets.Size()
}
