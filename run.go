package textcache

// GlyphRun is a drawable batch of glyphs sharing one resolved font: glyph
// ids, matching horizontal positions, and the baseline offset to draw them
// at. A GlyphRun never spans more than one resolved font.
type GlyphRun struct {
	// FontName is the stable identity string of the run's font.
	FontName string

	// Glyphs and Positions are parallel slices of equal length.
	Glyphs    []GlyphID
	Positions []float64

	// Baseline is the vertical offset from the top of the cell to the
	// baseline: the font's ascent normalized to the requested point size.
	Baseline float64
}

// Len returns the number of glyphs in the run.
func (r *GlyphRun) Len() int { return len(r.Glyphs) }

// ShapeResult is the ordered sequence of runs covering one shaped text,
// in left-to-right visual order.
type ShapeResult struct {
	Runs []GlyphRun
}

// Empty reports whether the result contains no glyphs.
func (r ShapeResult) Empty() bool { return len(r.Runs) == 0 }

// GlyphCount returns the total number of glyphs across all runs.
func (r ShapeResult) GlyphCount() int {
	n := 0
	for i := range r.Runs {
		n += len(r.Runs[i].Glyphs)
	}
	return n
}

// segmentRuns walks a glyph sequence in order and closes a run whenever the
// resolved font of the next glyph differs from the current run's font. Fonts
// are compared by their stable identity string, not by object identity. An
// empty sequence produces an empty result.
func segmentRuns(glyphs []PositionedGlyph, pointSize float64) ShapeResult {
	if len(glyphs) == 0 {
		return ShapeResult{}
	}

	runs := make([]GlyphRun, 0, 1)
	start := 0
	current := glyphs[0].Font.Name()

	for i := 1; i < len(glyphs); i++ {
		name := glyphs[i].Font.Name()
		if name != current {
			runs = append(runs, buildRun(glyphs[start:i], current, pointSize))
			start = i
			current = name
		}
	}
	runs = append(runs, buildRun(glyphs[start:], current, pointSize))

	return ShapeResult{Runs: runs}
}

// buildRun converts a same-font glyph span into a drawable batch.
func buildRun(glyphs []PositionedGlyph, fontName string, pointSize float64) GlyphRun {
	run := GlyphRun{
		FontName:  fontName,
		Glyphs:    make([]GlyphID, len(glyphs)),
		Positions: make([]float64, len(glyphs)),
	}
	if len(glyphs) == 0 {
		// Never dereference metrics of an empty run.
		return run
	}

	metrics := glyphs[0].Font.Metrics()
	if metrics.UnitsPerEm != 0 {
		run.Baseline = metrics.Ascent * pointSize / float64(metrics.UnitsPerEm)
	}

	for i, g := range glyphs {
		run.Glyphs[i] = g.GID
		run.Positions[i] = g.X
	}
	return run
}
