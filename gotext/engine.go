package gotext

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textcache"
)

// Engine is a textcache.LayoutEngine backed by go-text/typesetting's
// HarfBuzz port. Layout itemizes the input — per-character font selection
// across the collection in priority order, plus bidi level splitting — and
// shapes each item, producing glyphs in left-to-right visual order with
// cumulative horizontal offsets.
//
// Engine itself carries no per-call state beyond a pool of HarfbuzzShaper
// instances (they are not safe for concurrent use, the pool keeps sequential
// reuse cheap).
type Engine struct {
	shaperPool sync.Pool
	lang       language.Language
}

// NewEngine creates a HarfBuzz-backed layout engine.
func NewEngine() *Engine {
	return &Engine{
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		lang: language.NewLanguage("en"),
	}
}

// Layout implements textcache.LayoutEngine.
func (e *Engine) Layout(style textcache.TextStyle, collection *textcache.FontCollection, text string) ([]textcache.PositionedGlyph, error) {
	if text == "" || collection == nil || len(collection.Fonts) == 0 {
		return nil, nil
	}

	runes := []rune(text)
	levels := bidiLevels(text, len(runes))
	items := itemize(runes, levels, collection)

	glyphs := make([]textcache.PositionedGlyph, 0, len(runes))
	pen := 0.0
	for _, it := range items {
		shaped, err := e.shapeItem(style, it.font, runes, it.start, it.end, it.rtl)
		if err != nil {
			return nil, err
		}
		for _, g := range shaped {
			glyphs = append(glyphs, textcache.PositionedGlyph{
				GID:  textcache.GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids are uint16 in sfnt fonts
				Font: it.font,
				X:    pen + fixedToFloat(g.XOffset),
			})
			pen += fixedToFloat(g.Advance)
		}
	}
	return glyphs, nil
}

// LayoutRun implements textcache.LayoutEngine: one font, no fallback search,
// no bidi splitting.
func (e *Engine) LayoutRun(style textcache.TextStyle, f textcache.Font, text string) ([]textcache.PositionedGlyph, error) {
	if text == "" || f == nil {
		return nil, nil
	}

	runes := []rune(text)
	shaped, err := e.shapeItem(style, f, runes, 0, len(runes), false)
	if err != nil {
		return nil, err
	}

	glyphs := make([]textcache.PositionedGlyph, 0, len(shaped))
	pen := 0.0
	for _, g := range shaped {
		glyphs = append(glyphs, textcache.PositionedGlyph{
			GID:  textcache.GlyphID(uint16(g.GlyphID)), //nolint:gosec // glyph ids are uint16 in sfnt fonts
			Font: f,
			X:    pen + fixedToFloat(g.XOffset),
		})
		pen += fixedToFloat(g.Advance)
	}
	return glyphs, nil
}

// shapeItem shapes one same-font, same-direction span of runes.
func (e *Engine) shapeItem(style textcache.TextStyle, f textcache.Font, runes []rune, start, end int, rtl bool) ([]shaping.Glyph, error) {
	gf, ok := f.(*Font)
	if !ok {
		return nil, fmt.Errorf("gotext: font %q was not loaded by this package", f.Name())
	}

	dir := di.DirectionLTR
	if rtl {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: dir,
		Face:      gf.face,
		Size:      floatToFixed(style.Size),
		Script:    itemScript(runes[start:end]),
		Language:  e.lang,
	}

	hb := e.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	e.shaperPool.Put(hb)

	return output.Glyphs, nil
}

// item is a maximal span of runes shaped by one font in one direction.
type item struct {
	start, end int
	font       textcache.Font
	rtl        bool
}

// itemize splits runes into spans, breaking wherever the selected font or
// the bidi direction changes.
func itemize(runes []rune, levels []int, collection *textcache.FontCollection) []item {
	items := make([]item, 0, 2)
	cur := item{
		start: 0,
		font:  fontFor(runes[0], collection),
		rtl:   levels[0]%2 == 1,
	}

	for i := 1; i < len(runes); i++ {
		f := fontFor(runes[i], collection)
		rtl := levels[i]%2 == 1
		if f.Name() == cur.font.Name() && rtl == cur.rtl {
			continue
		}
		cur.end = i
		items = append(items, cur)
		cur = item{start: i, font: f, rtl: rtl}
	}

	cur.end = len(runes)
	return append(items, cur)
}

// fontFor selects the first collection font that covers r; collection order
// is fallback priority. Runes no font covers go to the primary, which
// renders its missing-glyph box.
func fontFor(r rune, collection *textcache.FontCollection) textcache.Font {
	for _, f := range collection.Fonts {
		if f.HasGlyph(r) {
			return f
		}
	}
	return collection.Primary()
}

// itemScript returns the script of the first non-space rune in the item.
func itemScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to 26.6 fixed point.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
