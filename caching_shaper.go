package textcache

import (
	"github.com/gogpu/textcache/internal/cache"
)

// CachingShaper is the caller-facing surface of the package: a shaper with a
// memoization tier on top. Repeated draws of identical (text, identity)
// pairs hit the shape cache and never re-enter the layout engine; the font
// tier underneath caches resolved collections the same way.
//
// A CachingShaper owns both tiers exclusively. It is NOT safe for concurrent
// use: cache reads mutate recency order, so all calls must come from one
// goroutine (typically the rendering thread).
type CachingShaper struct {
	shaper  *Shaper
	results *cache.LRU[ShapeKey, ShapeResult]
}

// NewCachingShaper creates a caching shaper resolving fonts through source
// and shaping through engine.
func NewCachingShaper(source FontSource, engine LayoutEngine, opts ...Option) *CachingShaper {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	catalog := NewFontCatalog(source, cfg.fallbackFamily, cfg.fontCapacity)
	return &CachingShaper{
		shaper:  NewShaper(catalog, engine),
		results: cache.New[ShapeKey, ShapeResult](cfg.shapeCapacity),
	}
}

// ShapeCached returns the shaped runs for (text, id), reusing a memoized
// result when one exists. On a miss the text is shaped, stored, and
// returned; shaping failures are returned to the caller and never cached, so
// a later call retries (after a font-list refresh, for example — this
// package performs no retries itself).
func (cs *CachingShaper) ShapeCached(text string, id FontIdentity) (ShapeResult, error) {
	key := ShapeKey{Text: text, Font: id}
	if result, ok := cs.results.Get(key); ok {
		return result, nil
	}

	result, err := cs.shaper.Shape(text, id)
	if err != nil {
		return ShapeResult{}, err
	}

	cs.results.Put(key, result)
	return result, nil
}

// Shape shapes text without consulting or filling the shape cache. The font
// tier still applies.
func (cs *CachingShaper) Shape(text string, id FontIdentity) (ShapeResult, error) {
	return cs.shaper.Shape(text, id)
}

// Clear empties both tiers unconditionally. Intended for font or
// configuration changes; afterwards every previously cached key is a miss.
func (cs *CachingShaper) Clear() {
	cs.shaper.catalog.Clear()
	cs.results.Clear()
}

// Stats holds counters for both cache tiers.
type Stats struct {
	// Fonts is the font tier (resolved collections).
	Fonts cache.Stats
	// Shapes is the shape tier (memoized results).
	Shapes cache.Stats
}

// Stats returns current counters for both tiers.
func (cs *CachingShaper) Stats() Stats {
	return Stats{
		Fonts:  cs.shaper.catalog.Stats(),
		Shapes: cs.results.Stats(),
	}
}
