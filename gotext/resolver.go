package gotext

import (
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/textcache"
)

// SystemSource resolves font families installed on the host through the
// go-text fontscan index. Building the index scans the platform font
// directories once (with an on-disk cache), so construct a SystemSource at
// startup and reuse it.
type SystemSource struct {
	fontMap *fontscan.FontMap
}

// NewSystemSource scans the host's fonts and returns a resolver over them.
func NewSystemSource() (*SystemSource, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}

	// fontscan's logger stays nil: index warnings about individual broken
	// font files are not actionable here.
	fontMap := fontscan.NewFontMap(nil)
	if err := fontMap.UseSystemFonts(cacheDir); err != nil {
		return nil, fmt.Errorf("gotext: scanning system fonts: %w", err)
	}
	return &SystemSource{fontMap: fontMap}, nil
}

// SelectFamilyByName implements textcache.FontSource. The name must match an
// installed family; there is no substitution or alias resolution here — that
// policy belongs to the caller.
func (s *SystemSource) SelectFamilyByName(name string) (textcache.FontFamily, error) {
	location, ok := s.fontMap.FindSystemFont(name)
	if !ok {
		return nil, fmt.Errorf("gotext: font family %q not installed", name)
	}
	return &systemFamily{name: name, location: location}, nil
}

// systemFamily is a located system font family; Load parses it on demand.
type systemFamily struct {
	name     string
	location fontscan.Location
}

// Load implements textcache.FontFamily.
func (f *systemFamily) Load() (textcache.Font, error) {
	file, err := os.Open(f.location.File)
	if err != nil {
		return nil, fmt.Errorf("gotext: opening %q: %w", f.location.File, err)
	}
	defer func() { _ = file.Close() }()

	// ParseTTC handles both single fonts and collections.
	faces, err := font.ParseTTC(file)
	if err != nil {
		return nil, fmt.Errorf("gotext: parsing %q: %w", f.location.File, err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("gotext: %q contains no faces", f.location.File)
	}

	index := int(f.location.Index)
	if index >= len(faces) {
		index = 0
	}
	return NewFont(faces[index]), nil
}

// MemorySource is a FontSource over fonts registered from memory. It serves
// embedded fonts and tests, where scanning the host is unwanted.
//
// The zero value is ready to use.
type MemorySource struct {
	families map[string]*Font
}

// Register parses font data and registers it under family. Registering a
// family again replaces it.
func (s *MemorySource) Register(family string, data []byte) error {
	f, err := ParseFont(data)
	if err != nil {
		return err
	}
	if s.families == nil {
		s.families = make(map[string]*Font)
	}
	s.families[family] = f
	return nil
}

// SelectFamilyByName implements textcache.FontSource.
func (s *MemorySource) SelectFamilyByName(name string) (textcache.FontFamily, error) {
	f, ok := s.families[name]
	if !ok {
		return nil, fmt.Errorf("gotext: font family %q not registered", name)
	}
	return memoryFamily{font: f}, nil
}

type memoryFamily struct {
	font *Font
}

// Load implements textcache.FontFamily.
func (f memoryFamily) Load() (textcache.Font, error) { return f.font, nil }
