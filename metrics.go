package textcache

import (
	"golang.org/x/image/math/fixed"
)

// referenceString is the probe text for cell-width estimation: most glyphs
// in it share the dominant advance of a monospace font, so outliers
// (ligatures, kerning exceptions, rendering noise) are out-voted.
const referenceString = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// CellDimensions estimates the monospace cell width and height for the font
// identified by id, taken at device scale 1 regardless of id's Scale field.
// The renderer calls this when the font or size changes to lay out its
// character grid.
//
// Height comes straight from the primary font's metrics, normalized to the
// point size. Width is statistical: the reference string is shaped against
// the primary font alone, consecutive horizontal offsets become advances,
// and the mode (most frequent advance) wins. Advances are quantized to 26.6
// fixed point for bucketing, so float representation noise cannot split a
// bucket.
//
// Fails with *InsufficientGlyphsError when the reference string shapes to
// fewer than two glyphs; the caller should fall back to a default cell size.
func (cs *CachingShaper) CellDimensions(id FontIdentity) (width, height float64, err error) {
	base := id
	base.Scale = 1

	collection, err := cs.shaper.catalog.Resolve(base)
	if err != nil {
		return 0, 0, err
	}
	primary := collection.Primary()

	metrics := primary.Metrics()
	if metrics.UnitsPerEm != 0 {
		height = (metrics.Ascent - metrics.Descent) * base.PointSize() / float64(metrics.UnitsPerEm)
	}

	style := TextStyle{Size: base.PointSize()}
	glyphs, err := cs.shaper.engine.LayoutRun(style, primary, referenceString)
	if err != nil {
		return 0, 0, &ShapingError{Text: referenceString, Identity: base, Err: err}
	}
	if len(glyphs) < 2 {
		return 0, 0, &InsufficientGlyphsError{Reference: referenceString, Got: len(glyphs)}
	}

	width = float64(modeAdvance(glyphs)) / 64
	return width, height, nil
}

// modeAdvance buckets consecutive offset deltas by their quantized value and
// returns the most frequent one. Ties break toward the smaller advance so
// the result is deterministic.
func modeAdvance(glyphs []PositionedGlyph) fixed.Int26_6 {
	counts := make(map[fixed.Int26_6]int, 8)
	for i := 1; i < len(glyphs); i++ {
		counts[quantize(glyphs[i].X-glyphs[i-1].X)]++
	}

	var best fixed.Int26_6
	bestCount := 0
	for advance, count := range counts {
		if count > bestCount || (count == bestCount && advance < best) {
			best = advance
			bestCount = count
		}
	}
	return best
}
