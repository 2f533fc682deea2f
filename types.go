package textcache

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// GlyphID is a glyph index within a font.
type GlyphID uint16

// FontIdentity is the tuple of attributes that fully determines which font
// resources a request resolves to. It is comparable and is used directly as
// a cache key.
//
// Size is stored as 26.6 fixed point rather than a float: cache keys must
// compare and hash identically for numerically equal sizes, and raw floats
// give no such guarantee (NaN, representation variance). Always build
// identities through NewFontIdentity so the size is quantized consistently.
type FontIdentity struct {
	// Family is the requested font family name.
	Family string

	// Size is the base point size quantized to 1/64pt.
	Size fixed.Int26_6

	// Scale is an integer device-pixel-ratio multiplier.
	Scale uint16

	// Bold and Italic select the style variant.
	Bold   bool
	Italic bool
}

// NewFontIdentity builds a FontIdentity with the size quantized to 26.6
// fixed point. Two calls with numerically equal sizes (12.0, 12.00) produce
// identical identities.
func NewFontIdentity(family string, size float64, scale uint16, bold, italic bool) FontIdentity {
	return FontIdentity{
		Family: family,
		Size:   quantize(size),
		Scale:  scale,
		Bold:   bold,
		Italic: italic,
	}
}

// quantize rounds a float value to 26.6 fixed point.
func quantize(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// PointSize returns the base size in points.
func (id FontIdentity) PointSize() float64 {
	return float64(id.Size) / 64
}

// EffectiveSize returns the size the layout engine shapes at: base size
// multiplied by the device scale. Folding the scale into the size keeps the
// shaping style a single parameter.
func (id FontIdentity) EffectiveSize() float64 {
	return id.PointSize() * float64(id.Scale)
}

// String returns a short description like "JetBrains Mono 12pt x2 bold".
func (id FontIdentity) String() string {
	s := fmt.Sprintf("%s %gpt", id.Family, id.PointSize())
	if id.Scale != 1 {
		s += fmt.Sprintf(" x%d", id.Scale)
	}
	if id.Bold {
		s += " bold"
	}
	if id.Italic {
		s += " italic"
	}
	return s
}

// ShapeKey identifies a shaping request in the shape cache. Two requests are
// cache-equivalent iff both the text and the font identity are exactly equal.
type ShapeKey struct {
	Text string
	Font FontIdentity
}
