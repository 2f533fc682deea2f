// Package textcache shapes text into drawable glyph runs and caches the
// results for a real-time renderer.
//
// # Overview
//
// Shaping (turning a string plus font attributes into positioned glyphs) is
// far too expensive to repeat every frame. textcache keeps per-frame cost low
// with two LRU tiers: a font tier that caches resolved font collections per
// [FontIdentity], and a shape tier that memoizes whole shaping results per
// (text, identity) pair. On top of the caches it provides the run
// segmentation a batched renderer needs — a shaped line may span several
// physical fonts (base font plus an emoji fallback), and each [GlyphRun]
// covers exactly one of them — and a statistical estimator that derives a
// monospace cell size from noisy per-glyph advances.
//
// # Quick start
//
//	source, err := gotext.NewSystemSource()
//	if err != nil {
//	    // no usable system fonts
//	}
//	shaper := textcache.NewCachingShaper(source, gotext.NewEngine())
//
//	id := textcache.NewFontIdentity("JetBrains Mono", 12.0, 1, false, false)
//	result, err := shaper.ShapeCached("Hello, world!", id)
//	for _, run := range result.Runs {
//	    // submit run.Glyphs / run.Positions to the drawing backend
//	}
//
// # Collaborators
//
// Font discovery, the layout engine, and the drawing backend are external to
// this package. [FontSource] and [LayoutEngine] describe the first two; the
// gotext subpackage implements both on go-text/typesetting (system font
// scanning via fontscan, HarfBuzz shaping). Drawing consumes [GlyphRun]
// batches and is entirely up to the renderer.
//
// # Concurrency
//
// A [CachingShaper] and everything it owns belong to a single rendering
// goroutine. Cache reads mutate recency order, so no operation is safe for
// concurrent use; callers must serialize access themselves.
package textcache
