package parameter

import "time"

// Palette Limits
const (
	// MaxRainbowColors is the largest number of distinct hues the six-sector
	// HSV approximation can produce in 8-bit RGB
	MaxRainbowColors = 1530

	// DefaultRainbowColors is the palette size when no count is given
	DefaultRainbowColors = MaxRainbowColors
)

// Ribbon Geometry
const (
	// RowPhaseStride is the per-row cycle offset producing the diagonal
	// scroll. Empirical visual constant, no derivation
	RowPhaseStride = 2
)

// Glyph Cycle
// Every cell advances one glyph through the printable ASCII range to defeat
// text-shaping and ligature caches in the renderer under test
const (
	// GlyphCycleFirst is the lowest printable glyph in the cycle
	GlyphCycleFirst byte = '!'

	// GlyphCycleCount is the number of printable glyphs ('!' through '~')
	GlyphCycleCount = 94

	// GlyphCycleOrigin is the glyph rendered by cell 0
	GlyphCycleOrigin byte = 'A'
)

// Viewport Query Bounds
const (
	// MinQueriedDim and MaxQueriedDim clamp dimensions parsed from a
	// cursor-position report
	MinQueriedDim = 1
	MaxQueriedDim = 1024
)

// Stats Sampling
const (
	// StatsWindow is the minimum span of a throughput measurement window.
	// Displayed rates always reflect the previous full window
	StatsWindow = time.Second
)
