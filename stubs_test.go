package textcache

import (
	"errors"
	"fmt"
)

// errNotInstalled stands in for the host reporting an unknown family.
var errNotInstalled = errors.New("family not installed")

// stubFont is a Font with scripted identity, metrics, and coverage.
type stubFont struct {
	name    string
	metrics FontMetrics
	covers  func(rune) bool
}

func (f *stubFont) Name() string { return f.name }

func (f *stubFont) Metrics() FontMetrics {
	if f.metrics.UnitsPerEm == 0 {
		return FontMetrics{Ascent: 800, Descent: -200, UnitsPerEm: 1000}
	}
	return f.metrics
}

func (f *stubFont) HasGlyph(r rune) bool {
	if f.covers == nil {
		return true
	}
	return f.covers(r)
}

// stubFamily loads a fixed font or fails.
type stubFamily struct {
	font Font
	err  error
}

func (f stubFamily) Load() (Font, error) { return f.font, f.err }

// stubSource resolves families from a fixed map and counts lookups.
type stubSource struct {
	fonts       map[string]Font
	loadErrs    map[string]error
	selectCalls map[string]int
}

// newStubSource creates a source knowing the given families, each backed by
// a stubFont named after the family.
func newStubSource(families ...string) *stubSource {
	s := &stubSource{
		fonts:       make(map[string]Font),
		loadErrs:    make(map[string]error),
		selectCalls: make(map[string]int),
	}
	for _, name := range families {
		s.fonts[name] = &stubFont{name: name}
	}
	return s
}

func (s *stubSource) SelectFamilyByName(name string) (FontFamily, error) {
	s.selectCalls[name]++
	if err, ok := s.loadErrs[name]; ok {
		return stubFamily{err: err}, nil
	}
	f, ok := s.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errNotInstalled, name)
	}
	return stubFamily{font: f}, nil
}

// stubEngine is a call-counting LayoutEngine with scriptable behavior.
// The default layout produces one glyph per rune in the collection's primary
// font, advancing 10 units per glyph.
type stubEngine struct {
	layoutCalls    int
	layoutRunCalls int
	lastStyle      TextStyle

	layoutFn    func(style TextStyle, collection *FontCollection, text string) ([]PositionedGlyph, error)
	layoutRunFn func(style TextStyle, font Font, text string) ([]PositionedGlyph, error)
}

func (e *stubEngine) Layout(style TextStyle, collection *FontCollection, text string) ([]PositionedGlyph, error) {
	e.layoutCalls++
	e.lastStyle = style
	if e.layoutFn != nil {
		return e.layoutFn(style, collection, text)
	}
	return monospaceGlyphs(collection.Primary(), text), nil
}

func (e *stubEngine) LayoutRun(style TextStyle, font Font, text string) ([]PositionedGlyph, error) {
	e.layoutRunCalls++
	e.lastStyle = style
	if e.layoutRunFn != nil {
		return e.layoutRunFn(style, font, text)
	}
	return monospaceGlyphs(font, text), nil
}

// monospaceGlyphs lays text out with a uniform advance of 10.
func monospaceGlyphs(font Font, text string) []PositionedGlyph {
	var glyphs []PositionedGlyph
	x := 0.0
	for i := range []rune(text) {
		glyphs = append(glyphs, PositionedGlyph{
			GID:  GlyphID(i + 1), //nolint:gosec // test glyph ids are tiny
			Font: font,
			X:    x,
		})
		x += 10
	}
	return glyphs
}

// glyphsAt builds one glyph per offset, all in the given font.
func glyphsAt(font Font, offsets ...float64) []PositionedGlyph {
	glyphs := make([]PositionedGlyph, len(offsets))
	for i, x := range offsets {
		glyphs[i] = PositionedGlyph{GID: GlyphID(i + 1), Font: font, X: x} //nolint:gosec // test glyph ids are tiny
	}
	return glyphs
}
