package textcache

// Default cache capacities and the default emoji fallback family.
const (
	// DefaultFontCapacity bounds the font tier (resolved collections).
	DefaultFontCapacity = 100

	// DefaultShapeCapacity bounds the shape tier (memoized results).
	DefaultShapeCapacity = 10000

	// DefaultFallbackFamily is the emoji/symbol family loaded into every
	// collection unless overridden with WithFallbackFamily.
	DefaultFallbackFamily = "Noto Color Emoji"
)

// Option configures a CachingShaper.
type Option func(*config)

// config holds CachingShaper configuration.
type config struct {
	fontCapacity   int
	shapeCapacity  int
	fallbackFamily string
}

// defaultConfig returns the default configuration.
func defaultConfig() config {
	return config{
		fontCapacity:   DefaultFontCapacity,
		shapeCapacity:  DefaultShapeCapacity,
		fallbackFamily: DefaultFallbackFamily,
	}
}

// WithFontCacheCapacity sets the maximum number of cached font collections.
// Values below 1 keep the default.
func WithFontCacheCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.fontCapacity = n
		}
	}
}

// WithShapeCacheCapacity sets the maximum number of memoized shape results.
// Values below 1 keep the default.
func WithShapeCacheCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.shapeCapacity = n
		}
	}
}

// WithFallbackFamily sets the emoji/symbol fallback family loaded into every
// font collection. The default suits Linux hosts; pass the platform's emoji
// family ("Segoe UI Emoji", "Apple Color Emoji") where it differs.
func WithFallbackFamily(name string) Option {
	return func(c *config) {
		if name != "" {
			c.fallbackFamily = name
		}
	}
}
