package gotext

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"

	"github.com/gogpu/textcache"
)

// Font adapts a parsed go-text face to the textcache Font interface.
type Font struct {
	face *font.Face
	name string
}

// NewFont wraps an already-parsed go-text face.
func NewFont(face *font.Face) *Font {
	return &Font{face: face, name: describeName(face)}
}

// ParseFont parses TTF/OTF font data into a Font. The data is not copied;
// callers must not mutate it afterwards.
func ParseFont(data []byte) (*Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gotext: parsing font data: %w", err)
	}
	return NewFont(face), nil
}

// Name returns the stable identity string used for run segmentation:
// the family name plus any bold/italic style suffix, so style variants of
// one family segment into separate runs.
//
// Two faces with equal names are treated as the same font even when they are
// distinct instances; faces parsed by this package carry no instance state
// that rendering could observe, so the merge is safe.
func (f *Font) Name() string { return f.name }

// Metrics returns the face's design-space metrics.
func (f *Font) Metrics() textcache.FontMetrics {
	upem := f.face.Upem()
	extents, ok := f.face.FontHExtents()
	if !ok {
		// No hhea/os2 extents; approximate with the em box.
		return textcache.FontMetrics{
			Ascent:     float64(upem),
			Descent:    0,
			UnitsPerEm: upem,
		}
	}
	return textcache.FontMetrics{
		Ascent:     float64(extents.Ascender),
		Descent:    float64(extents.Descender),
		LineGap:    float64(extents.LineGap),
		UnitsPerEm: upem,
	}
}

// HasGlyph reports whether the face maps r to a glyph in its cmap.
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// Face exposes the underlying go-text face for direct use with
// go-text APIs.
func (f *Font) Face() *font.Face { return f.face }

// describeName builds the identity string from the face's description.
func describeName(face *font.Face) string {
	desc := face.Describe()
	name := desc.Family
	if desc.Aspect.Weight >= font.WeightBold {
		name += " Bold"
	}
	if desc.Aspect.Style == font.StyleItalic {
		name += " Italic"
	}
	return name
}
