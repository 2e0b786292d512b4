package text

// Glyph is one positioned glyph in a shaped run, ready for the host's
// glyph renderer.
type Glyph struct {
	// GID is the glyph index in the font.
	GID uint32

	// Cluster is the source rune index in the original string.
	// Used for hit testing and caret positioning.
	Cluster int

	// X is the horizontal position relative to the run origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}

// ShapedText is a cached shaped representation of a string: positioned
// glyphs plus the run's total advance width. It is immutable once built.
type ShapedText struct {
	// Text is the source string the run was shaped from.
	Text string

	// Glyphs are the positioned glyphs in visual order.
	Glyphs []Glyph

	// Width is the total advance width of the run in pixels.
	Width float64
}
