package gotext

import (
	"golang.org/x/text/unicode/bidi"
)

// bidiLevels computes the bidi embedding level of every rune in text with a
// neutral default direction. Even levels are left-to-right, odd levels
// right-to-left. On resolution failure every rune reports level 0.
func bidiLevels(text string, runeCount int) []int {
	levels := make([]int, runeCount)

	p := bidi.Paragraph{}
	_, _ = p.SetString(text, bidi.DefaultDirection(bidi.Neutral))

	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, start and end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		level := 0
		if run.Direction() == bidi.RightToLeft {
			level = 1
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = level
		}
	}

	return levels
}
