package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds font-level metrics at a specific size. All values are in
// pixels and positive distances from the baseline.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font.
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// Height returns the total line height (ascent + descent + line gap).
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Face is a Source at a specific size. It answers measurement queries;
// for positioned glyph runs use a Shaper.
//
// Face is a small value-like object; creating one is cheap.
type Face struct {
	source *Source
	size   float64
}

// NewFace creates a Face for the source at the given size in pixels.
func NewFace(source *Source, size float64) *Face {
	return &Face{source: source, size: size}
}

// Source returns the Source this face was created from.
func (f *Face) Source() *Source { return f.source }

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.parsed.Metrics(&buf, fixedFromFloat(f.size), font.HintingFull)
	if err != nil {
		return Metrics{}
	}
	ascent := fixedToFloat(m.Ascent)
	descent := fixedToFloat(m.Descent)
	if descent < 0 {
		descent = -descent
	}
	return Metrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(m.Height) - ascent - descent,
		CapHeight: fixedToFloat(m.CapHeight),
	}
}

// Advance returns the total advance width of the text in pixels: the sum
// of the nominal glyph advances. It ignores kerning and ligatures, which
// makes it a stable, shaping-independent width measure for wrapping.
func (f *Face) Advance(text string) float64 {
	var buf sfnt.Buffer
	size := fixedFromFloat(f.size)
	total := 0.0
	for _, r := range text {
		gid, err := f.source.parsed.GlyphIndex(&buf, r)
		if err != nil {
			continue
		}
		adv, err := f.source.parsed.GlyphAdvance(&buf, gid, size, font.HintingFull)
		if err != nil {
			continue
		}
		total += fixedToFloat(adv)
	}
	return total
}

// fixedFromFloat converts a float64 pixel value to fixed.Int26_6.
func fixedFromFloat(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
