package textcache

import (
	"errors"
	"math"
	"testing"
)

// offsetsFromAdvances converts an advance sequence to cumulative offsets,
// which is what a layout engine reports.
func offsetsFromAdvances(advances ...float64) []float64 {
	offsets := make([]float64, len(advances)+1)
	x := 0.0
	for i, a := range advances {
		offsets[i] = x
		x += a
	}
	offsets[len(advances)] = x
	return offsets
}

func metricsEngine(t *testing.T, advances ...float64) *stubEngine {
	t.Helper()
	return &stubEngine{
		layoutRunFn: func(_ TextStyle, font Font, _ string) ([]PositionedGlyph, error) {
			return glyphsAt(font, offsetsFromAdvances(advances...)...), nil
		},
	}
}

func TestCellDimensions_ModeWins(t *testing.T) {
	tests := []struct {
		name     string
		advances []float64
		want     float64
	}{
		{"dominant advance out-votes outliers", []float64{5, 5, 5, 7, 5, 6}, 5},
		{"uniform monospace", []float64{7, 7, 7, 7}, 7},
		{"tie breaks toward smaller", []float64{5, 5, 6, 6}, 5},
		{"float noise shares a bucket", []float64{5.0000001, 4.9999999, 5.000001, 7}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := metricsEngine(t, tt.advances...)
			cs := testCachingShaper(newStubSource("Go Mono", testFallback), engine)

			width, _, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 1, false, false))
			if err != nil {
				t.Fatalf("CellDimensions: %v", err)
			}
			if width != tt.want {
				t.Errorf("width = %v, want %v", width, tt.want)
			}
		})
	}
}

func TestCellDimensions_HeightFromMetrics(t *testing.T) {
	source := newStubSource(testFallback)
	source.fonts["Go Mono"] = &stubFont{
		name:    "Go Mono",
		metrics: FontMetrics{Ascent: 800, Descent: -200, UnitsPerEm: 1000},
	}
	cs := testCachingShaper(source, metricsEngine(t, 5, 5, 5))

	_, height, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 1, false, false))
	if err != nil {
		t.Fatalf("CellDimensions: %v", err)
	}

	// (ascent - descent) * size / upem = (800 + 200) * 12 / 1000
	want := 12.0
	if math.Abs(height-want) > 1e-9 {
		t.Errorf("height = %v, want %v", height, want)
	}
}

func TestCellDimensions_ProbesAtScaleOne(t *testing.T) {
	engine := metricsEngine(t, 5, 5, 5)
	cs := testCachingShaper(newStubSource("Go Mono", testFallback), engine)

	// Scale 3 on the identity must not inflate the probe size.
	if _, _, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 3, false, false)); err != nil {
		t.Fatalf("CellDimensions: %v", err)
	}
	if engine.lastStyle.Size != 12 {
		t.Errorf("probe shaped at size %v, want 12 (scale 1)", engine.lastStyle.Size)
	}
	if engine.layoutRunCalls != 1 {
		t.Errorf("layoutRun calls = %d, want 1", engine.layoutRunCalls)
	}
}

func TestCellDimensions_ProbesPrimaryFontOnly(t *testing.T) {
	engine := &stubEngine{
		layoutRunFn: func(_ TextStyle, font Font, _ string) ([]PositionedGlyph, error) {
			if font.Name() != "Go Mono" {
				return nil, errors.New("probe must use the primary font, not the fallback")
			}
			return glyphsAt(font, offsetsFromAdvances(5, 5, 5)...), nil
		},
	}
	cs := testCachingShaper(newStubSource("Go Mono", testFallback), engine)

	if _, _, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 1, false, false)); err != nil {
		t.Fatalf("CellDimensions: %v", err)
	}
}

func TestCellDimensions_InsufficientGlyphs(t *testing.T) {
	tests := []struct {
		name   string
		glyphs int
	}{
		{"no glyphs", 0},
		{"single glyph", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := &stubEngine{
				layoutRunFn: func(_ TextStyle, font Font, _ string) ([]PositionedGlyph, error) {
					offsets := make([]float64, tt.glyphs)
					return glyphsAt(font, offsets...), nil
				},
			}
			cs := testCachingShaper(newStubSource("Go Mono", testFallback), engine)

			_, _, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 1, false, false))

			var insErr *InsufficientGlyphsError
			if !errors.As(err, &insErr) {
				t.Fatalf("expected *InsufficientGlyphsError, got %v", err)
			}
			if insErr.Got != tt.glyphs {
				t.Errorf("Got = %d, want %d", insErr.Got, tt.glyphs)
			}
			if insErr.Reference != referenceString {
				t.Error("error should carry the reference string")
			}
		})
	}
}

func TestCellDimensions_EngineFailure(t *testing.T) {
	cause := errors.New("no usable cmap")
	engine := &stubEngine{
		layoutRunFn: func(_ TextStyle, _ Font, _ string) ([]PositionedGlyph, error) {
			return nil, cause
		},
	}
	cs := testCachingShaper(newStubSource("Go Mono", testFallback), engine)

	_, _, err := cs.CellDimensions(NewFontIdentity("Go Mono", 12, 1, false, false))

	var shapingErr *ShapingError
	if !errors.As(err, &shapingErr) {
		t.Fatalf("expected *ShapingError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be preserved")
	}
}

func TestCellDimensions_MissingPrimaryFont(t *testing.T) {
	cs := testCachingShaper(newStubSource(testFallback), metricsEngine(t, 5, 5))

	_, _, err := cs.CellDimensions(NewFontIdentity("Missing", 12, 1, false, false))

	var loadErr *FontLoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *FontLoadError, got %v", err)
	}
}
