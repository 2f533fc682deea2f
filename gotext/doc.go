// Package gotext implements textcache's collaborator interfaces on
// go-text/typesetting: [SystemSource] resolves font families from the host's
// installed fonts via fontscan, and [Engine] shapes text with the HarfBuzz
// port, including per-character fallback across a font collection and
// bidi-aware run splitting.
//
//	source, err := gotext.NewSystemSource()
//	if err != nil { ... }
//	shaper := textcache.NewCachingShaper(source, gotext.NewEngine())
package gotext
