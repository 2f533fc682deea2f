package textcache

import (
	"github.com/gogpu/textcache/internal/cache"
)

// FontCatalog resolves a FontIdentity to a loaded FontCollection and caches
// the collections with LRU eviction. It is the font tier of the two-tier
// cache.
//
// FontCatalog is NOT safe for concurrent use; see the package documentation.
type FontCatalog struct {
	source         FontSource
	fallbackFamily string
	collections    *cache.LRU[FontIdentity, *FontCollection]
}

// NewFontCatalog creates a catalog resolving through source. fallbackFamily
// names the well-known emoji/symbol family loaded into every collection;
// capacity bounds the number of cached collections.
func NewFontCatalog(source FontSource, fallbackFamily string, capacity int) *FontCatalog {
	return &FontCatalog{
		source:         source,
		fallbackFamily: fallbackFamily,
		collections:    cache.New[FontIdentity, *FontCollection](capacity),
	}
}

// Resolve returns the font collection for id, loading and caching it on the
// first request. Every access, hit or miss, refreshes the entry's recency.
//
// The requested family failing to load is fatal to the request and surfaces
// as a *FontLoadError with RolePrimary; there is no fallback beyond the
// single named fallback family. The fallback family failing to load is not:
// the collection degrades to the primary family alone (HasEmoji false) and
// the event is logged at warn level.
func (c *FontCatalog) Resolve(id FontIdentity) (*FontCollection, error) {
	if collection, ok := c.collections.Get(id); ok {
		return collection, nil
	}

	collection := &FontCollection{}

	// Fallback family first: collection order is fallback priority.
	fallback, err := c.loadFamily(c.fallbackFamily)
	if err == nil {
		collection.Fonts = append(collection.Fonts, fallback)
		collection.HasEmoji = true
	} else {
		loadErr := &FontLoadError{Family: c.fallbackFamily, Role: RoleFallback, Err: err}
		Logger().Warn("emoji fallback unavailable, shaping without emoji support",
			"family", c.fallbackFamily, "err", loadErr)
	}

	primary, err := c.loadFamily(id.Family)
	if err != nil {
		return nil, &FontLoadError{Family: id.Family, Role: RolePrimary, Err: err}
	}
	collection.Fonts = append(collection.Fonts, primary)

	c.collections.Put(id, collection)
	return collection, nil
}

// loadFamily locates a family by name and loads its representative face.
func (c *FontCatalog) loadFamily(name string) (Font, error) {
	family, err := c.source.SelectFamilyByName(name)
	if err != nil {
		return nil, err
	}
	return family.Load()
}

// Len returns the number of cached collections.
func (c *FontCatalog) Len() int { return c.collections.Len() }

// Clear drops every cached collection.
func (c *FontCatalog) Clear() { c.collections.Clear() }

// Stats returns the font tier's cache counters.
func (c *FontCatalog) Stats() cache.Stats { return c.collections.Stats() }
