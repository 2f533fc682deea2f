package textcache

// TextStyle carries the style attributes the layout engine shapes with.
// The device scale is already folded into Size (see
// [FontIdentity.EffectiveSize]), so a single field suffices.
type TextStyle struct {
	// Size is the effective point size to shape at.
	Size float64
}

// PositionedGlyph is one glyph produced by the layout engine: a glyph index,
// the font it resolved to during fallback search, and its horizontal offset
// from the start of the text. Read-only to this package.
type PositionedGlyph struct {
	GID  GlyphID
	Font Font
	X    float64
}

// LayoutEngine converts text plus style into positioned, font-attributed
// glyphs. Bidirectional reordering, vertical text, and complex-script
// shaping all live behind this interface; the gotext subpackage provides a
// HarfBuzz-backed implementation.
type LayoutEngine interface {
	// Layout shapes text against a full collection, searching it in
	// priority order for a font covering each character. The returned
	// glyphs are in left-to-right visual order. Empty text yields an empty
	// slice and no error.
	Layout(style TextStyle, collection *FontCollection, text string) ([]PositionedGlyph, error)

	// LayoutRun shapes text against a single font with no fallback search.
	// Used for metric probes where fallback would distort the measurement.
	LayoutRun(style TextStyle, font Font, text string) ([]PositionedGlyph, error)
}
