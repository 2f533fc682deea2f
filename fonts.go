package textcache

// FontSource resolves family names to loadable font families. It models the
// host's font discovery service (system font index, embedded font registry)
// and is a black box to this package beyond this contract.
type FontSource interface {
	// SelectFamilyByName looks a family up by name. It returns an error when
	// the family is not present on the host.
	SelectFamilyByName(name string) (FontFamily, error)
}

// FontFamily is a located-but-not-yet-loaded font family.
type FontFamily interface {
	// Load parses the family's representative face into a usable Font.
	Load() (Font, error)
}

// Font is a loaded font resource as seen by the shaping core.
type Font interface {
	// Name returns a stable identity string used to segment glyph sequences
	// into same-font runs. Two Font instances with equal names are treated
	// as the same font for segmentation, even if they are distinct objects.
	Name() string

	// Metrics returns the font's design-space metrics.
	Metrics() FontMetrics

	// HasGlyph reports whether the font maps r to a real glyph.
	HasGlyph(r rune) bool
}

// FontMetrics holds design-space font metrics. Values are in font units and
// are normalized to a point size by multiplying with size/UnitsPerEm.
type FontMetrics struct {
	// Ascent is the distance from the baseline to the top of the em box,
	// in font units (positive, above the baseline).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the em
	// box, in font units (negative, below the baseline).
	Descent float64

	// LineGap is the recommended extra spacing between lines.
	LineGap float64

	// UnitsPerEm is the font's design-space scale, typically 1000 or 2048.
	UnitsPerEm uint16
}

// FontCollection is the ordered set of fonts resolved for one FontIdentity.
// Order defines fallback priority during layout: the emoji/symbol fallback
// family comes first when it loaded, the requested family last.
type FontCollection struct {
	Fonts []Font

	// HasEmoji is false when the fallback family failed to load and the
	// collection degraded to the primary family alone. Text still shapes;
	// emoji render as the primary font's missing-glyph boxes.
	HasEmoji bool
}

// Primary returns the requested family's font, or nil for an empty
// collection.
func (c *FontCollection) Primary() Font {
	if c == nil || len(c.Fonts) == 0 {
		return nil
	}
	return c.Fonts[len(c.Fonts)-1]
}
