package textcache

import "fmt"

// FontRole distinguishes which collection slot a font load was for.
type FontRole int

const (
	// RolePrimary is the family the caller asked for.
	RolePrimary FontRole = iota
	// RoleFallback is the well-known emoji/symbol fallback family.
	RoleFallback
)

// String returns the string representation of the role.
func (r FontRole) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// FontLoadError reports that a font family could not be located or loaded.
// Role tells whether it was the requested family or the emoji fallback; only
// a primary failure is fatal to the request.
type FontLoadError struct {
	Family string
	Role   FontRole
	Err    error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("textcache: loading %s font %q: %v", e.Role, e.Family, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// ShapingError reports that the layout engine failed for a request.
// No partial ShapeResult accompanies it.
type ShapingError struct {
	Text     string
	Identity FontIdentity
	Err      error
}

func (e *ShapingError) Error() string {
	return fmt.Sprintf("textcache: shaping %q with %s: %v", e.Text, e.Identity, e.Err)
}

func (e *ShapingError) Unwrap() error { return e.Err }

// InsufficientGlyphsError reports that the cell-width reference string shaped
// to fewer than two glyphs, so no advance could be measured. Callers should
// fall back to a default cell size.
type InsufficientGlyphsError struct {
	Reference string
	Got       int
}

func (e *InsufficientGlyphsError) Error() string {
	return fmt.Sprintf("textcache: reference string shaped to %d glyphs, need at least 2", e.Got)
}
