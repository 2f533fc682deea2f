package textcache

// Shaper turns text plus a font identity into a ShapeResult: it resolves the
// font collection through the catalog, invokes the layout engine, and
// segments the resulting glyph sequence into contiguous per-font runs.
//
// Shaper is NOT safe for concurrent use; see the package documentation.
type Shaper struct {
	catalog *FontCatalog
	engine  LayoutEngine
}

// NewShaper creates a shaper resolving fonts through catalog and shaping
// through engine.
func NewShaper(catalog *FontCatalog, engine LayoutEngine) *Shaper {
	return &Shaper{catalog: catalog, engine: engine}
}

// Shape shapes text with the fonts identified by id. The layout engine runs
// at the effective size (base size times device scale); baselines in the
// result are normalized to the base point size. Empty text, or a layout that
// produces no glyphs, yields an empty ShapeResult and no error.
//
// A layout engine failure surfaces as a *ShapingError with no partial
// result; a font load failure surfaces as a *FontLoadError.
func (s *Shaper) Shape(text string, id FontIdentity) (ShapeResult, error) {
	collection, err := s.catalog.Resolve(id)
	if err != nil {
		return ShapeResult{}, err
	}

	style := TextStyle{Size: id.EffectiveSize()}
	glyphs, err := s.engine.Layout(style, collection, text)
	if err != nil {
		return ShapeResult{}, &ShapingError{Text: text, Identity: id, Err: err}
	}

	return segmentRuns(glyphs, id.PointSize()), nil
}

// Catalog returns the font tier this shaper resolves through.
func (s *Shaper) Catalog() *FontCatalog { return s.catalog }
