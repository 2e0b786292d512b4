// Package text provides the shaped-text layer for the developer console.
//
// A [Source] is a parsed font file; a [Face] is a Source at a specific
// size and answers measurement queries (advance widths, metrics); a
// [Shaper] turns strings into positioned glyph runs ([ShapedText]) via
// HarfBuzz-level shaping from go-text/typesetting.
//
// Shaping is comparatively expensive, so callers cache ShapedText values
// and re-shape only when the underlying string changes. The console's
// line buffer and widgets follow that pattern.
package text
