package devconsole

import "github.com/gogpu/devconsole/text"

// Rect is an axis-aligned rectangle in virtual screen units.
// X,Y is the bottom-left corner; Y increases upward.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle,
// inclusive on all four edges.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Surface is the frame-drawing boundary the console renders through.
// The host supplies one per frame; the console issues primitives and
// performs no presentation.
//
// Implementations translate these calls into their own draw submission
// (textured quads, scissored regions, glyph atlases). All coordinates
// are virtual screen units, Y up.
type Surface interface {
	// FillRect draws a solid rectangle.
	FillRect(r Rect, c RGBA)

	// ShadowRect draws a soft-edged rectangle (vertical falloff) clipped
	// to the clip region. Used for the console's drop shadow.
	ShadowRect(r Rect, clip Rect, c RGBA)

	// DrawText draws a shaped glyph run with its origin (baseline left)
	// at x, y, scaled uniformly by scale. Flatness selects unlit flat
	// rendering for UI text; 0 means the surface's default text style.
	DrawText(run *text.ShapedText, x, y, scale float64, c RGBA, flatness float64)
}
